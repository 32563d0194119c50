/*
Package backends определяет интерфейс адаптера СУБД и фабрику адаптеров.

Адаптер отвечает за engine-специфичную часть слоя доступа к данным:
открытие подключения, маппинг таксономии типов параметров на теги движка,
синтаксис плейсхолдеров и запрос последнего вставленного identity.
Всем остальным (жизненный цикл сессии, транзакции, связывание параметров,
чтение результатов) владеет pkg/dbal.

	┌──────────────────────────────────────┐
	│  pkg/dbal: Executor / Session / Tx   │
	└─────────────────┬────────────────────┘
	                  │ Backend interface
	        ┌─────────┼─────────┬──────────┐
	        │         │         │          │
	┌───────▼───┐ ┌───▼────┐ ┌──▼─────┐ ┌──▼───────┐
	│  sqlite   │ │ mysql  │ │ mssql  │ │ postgres │
	└───────────┘ └────────┘ └────────┘ └──────────┘

# Регистрация адаптеров

Адаптеры регистрируются автоматически через init():

	import _ "github.com/ruslano69/dbal/pkg/backends/sqlite"
	import _ "github.com/ruslano69/dbal/pkg/backends/mysql"

После импорта пакета адаптер доступен через фабрику:

	backend, err := backends.New(backends.Config{
	    Type: "sqlite",
	    DSN:  "file:app.db",
	})

# Создание нового адаптера

Новая СУБД добавляется новой таблицей маппинга, без изменения таксономии:

 1. Создайте пакет pkg/backends/yourdb
 2. Реализуйте интерфейс Backend (Open, BindParam, Placeholder, IdentityQuery)
 3. Зарегистрируйте конструктор в init()
*/
package backends
