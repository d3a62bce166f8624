package entity

type Category struct {
	BaseSimple
	Name        string  `db:"name"`
	Slug        string  `db:"slug"`
	Description *string `db:"description"`
	Icon        *string `db:"icon"`
}
