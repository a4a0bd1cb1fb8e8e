// Package commands: CLI витрины.
//
// Команды
//
//   - shop      интерактивная витрина: каталог, корзина, оформление заказа
//   - catalog   вывести каталог или один товар
//
// Корневая команда читает конфигурацию окружения и создаёт клиент API магазина
// до запуска подкоманды; флаги перекрывают окружение.
package commands
