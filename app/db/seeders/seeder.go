package seeders

import (
	"github.com/DevarshLade/lade-studio/app/db/fakers"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

func SeedersRegister(db *gorm.DB) []Seeder {
	var seeds []Seeder
	for _, name := range fakers.CategoryNames() {
		category := fakers.CategoryFaker(db, name)
		seeds = append(seeds, Seeder{Seeder: category})
		for i := 0; i < 4; i++ {
			seeds = append(seeds, Seeder{Seeder: fakers.ProductFaker(db, category)})
		}
	}
	return seeds
}

func DBSeed(db *gorm.DB) error {
	for _, seeder := range SeedersRegister(db) {
		if err := db.Debug().Create(seeder.Seeder).Error; err != nil {
			return err
		}
	}
	return nil
}
