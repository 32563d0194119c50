/*
Package dbal реализует ядро слоя доступа к данным: сессию со счетчиком
ссылок, flattened транзакции, связывание параметров и типизированные
читатели результатов.

# Сессия

Session лениво открывает подключение на первом Acquire и закрывает его,
когда счетчик возвращается к нулю. Пары Acquire/Release вкладываются:

	if err := exec.Acquire(ctx); err != nil {
	    return err
	}
	defer exec.Release()

	// несколько операций на одном подключении
	exec.Exec(ctx, "...")
	dbal.Value[int64](ctx, exec, "...")

Каждая операция Executor дополнительно делает собственную пару
Acquire/Release, поэтому без внешнего checkout подключение переоткрывается
на каждый вызов.

# Транзакции

TransactionScope реализует flattened семантику: вложенные Begin/Commit
разделяют одну нативную транзакцию, Rollback на любой глубине отменяет
весь scope. Независимых вложенных транзакций нет.

	exec.Begin(ctx)          // физический BEGIN
	exec.Begin(ctx)          // только счетчик
	exec.Exec(ctx, "...")    // выполняется внутри транзакции
	exec.Commit()            // только счетчик
	exec.Commit()            // физический COMMIT

# Параметры

Аргументы операций связываются по runtime типу; param.TypedValue задает
тип явно (обязательно для nil, допустимо для переинтерпретации).
Срез аргумента разворачивается поэлементно для IN (...):

	ids := []int64{10, 20, 30}
	q := "SELECT name FROM users WHERE id IN (" + exec.Placeholders(0, len(ids)) + ")"
	names, err := dbal.ValueList[string](ctx, exec, q, ids)

# Потоки

Один Executor обслуживает один логический поток работы. Счетчики сессии
и транзакции защищены мьютексами, но упорядочивание операций между
горутинами остается за вызывающим.
*/
package dbal
