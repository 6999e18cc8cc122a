package model

// Field identifies one transaction field by its storage column name.
type Field string

const (
	FieldDate        Field = "date"
	FieldCategory    Field = "category"
	FieldExpenseType Field = "expense_type"
	FieldTitle       Field = "title"
	FieldAmount      Field = "amount"
	FieldCurrency    Field = "currency"
	FieldDescription Field = "description"
)

// Fields lists the storage columns in file order.
var Fields = []Field{
	FieldDate,
	FieldCategory,
	FieldExpenseType,
	FieldTitle,
	FieldAmount,
	FieldCurrency,
	FieldDescription,
}
