package dto

type EntityCountRow struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
}
