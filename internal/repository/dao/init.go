package dao

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Slot{},
	)
}

// SeedSlots inserts the sample catalog when the slots table holds no rows at all.
func SeedSlots(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&Slot{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count slots -> %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := sampleSlotsActive()
	if err := db.WithContext(ctx).Create(&seeds).Error; err != nil {
		return fmt.Errorf("insert sample slots -> %w", err)
	}
	zap.L().Info("seeded sample slots", zap.Int("count", len(seeds)))

	return nil
}
