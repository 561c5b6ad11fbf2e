package main

import (
	"locator/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.LocationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
