// Package university содержит доменную модель университета: студенты,
// преподаватели, предметы, кафедры и оценки. Это ядро бизнес-логики -
// здесь нет внешних зависимостей, только типы и производные вычисления.
//
// Все записи создаются вызывающей стороной и считаются корректными;
// пакет ничего не валидирует при агрегации и ничего не мутирует.
package university
