// 収集済みリードを CSV でエクスポートする運用スクリプト
//
// エージェントチームへの定期連携用。標準出力に書き出すので、
// リダイレクトしてファイルに保存する。
//
// 用法: go run scripts/export_leads.go > leads.csv

package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"time"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/model"
	"jobmatch_backend/pkg/database"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("設定ファイルを読み込めません: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("設定ファイルの解析に失敗しました: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	var leads []model.Lead
	if err := db.Preload("Answers").Order("id asc").Find(&leads).Error; err != nil {
		log.Fatalf("リードの読み込みに失敗しました: %v", err)
	}

	w := csv.NewWriter(os.Stdout)
	header := []string{"id", "name", "school", "phone", "email", "consented_at", "answers"}
	if err := w.Write(header); err != nil {
		log.Fatalf("CSV 書き込みに失敗しました: %v", err)
	}

	for _, lead := range leads {
		row := []string{
			strconv.FormatUint(uint64(lead.ID), 10),
			lead.Name,
			lead.School,
			deref(lead.Phone),
			deref(lead.Email),
			lead.ConsentedAt.Format(time.RFC3339),
			answerSummary(lead.Answers),
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("CSV 書き込みに失敗しました: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("CSV 書き込みに失敗しました: %v", err)
	}
	log.Printf("%d 件のリードをエクスポートしました", len(leads))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func answerSummary(answers []model.LeadAnswer) string {
	out := ""
	for i, a := range answers {
		if i > 0 {
			out += ";"
		}
		out += a.QuestionID + "=" + a.AnswerValue
	}
	return out
}
