package main

import (
	"promo/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PromotionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
