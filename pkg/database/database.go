package database

import (
	"fmt"
	"log"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedQuestions(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Question{},
		&model.QuestionOption{},
		&model.Lead{},
		&model.LeadAnswer{},
	)
}

// SeedQuestions inserts the default diagnosis catalog when the questions table
// is empty. The database is the authoritative catalog; this list is only a
// first-boot fixture.
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []string{
		"働くなら、やっぱり都会（東京・大阪など）に出たい？",
		"誰も知らない『隠れ優良企業』なら、名前は知らなくても興味ある？",
		"人と話すよりも、モノづくりや専門スキルを磨く方が好き？",
		"IT・Web業界のスピード感ある環境に憧れる？",
		"ぶっちゃけ、今の自分の就活状況に『焦り』を感じている？",
		"自己分析や企業探し、一人でやるのは正直しんどい？",
		"できれば、1〜2ヶ月以内には内定を決めて安心したい？",
		"プロがあなたに合った企業を提案してくれるなら、話を聞いてみたい？",
	}

	for i, text := range defaults {
		q := model.Question{
			Text:         text,
			QuestionType: model.QuestionTypeBinary,
			Required:     true,
			Active:       true,
			SortOrder:    i + 1,
		}
		if err := db.Create(&q).Error; err != nil {
			return err
		}
	}
	return nil
}
