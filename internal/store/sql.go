package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"mindtree/internal/logger"
	"mindtree/internal/model"
)

type entryRow struct {
	ID        uint   `gorm:"primaryKey"`
	Seq       int    `gorm:"uniqueIndex"`
	Date      string `gorm:"type:varchar(10)"`
	MCQScore  int
	Sentiment string `gorm:"type:varchar(16)"`
	Mood      string `gorm:"type:varchar(16)"`
	FreeText  string `gorm:"type:text"`
	Feedback  string `gorm:"type:text"`
}

type healthRow struct {
	ID            uint `gorm:"primaryKey;autoIncrement:false"`
	CurrentHealth int
}

func (entryRow) TableName() string  { return "checkin_entries" }
func (healthRow) TableName() string { return "tree_health" }

const healthRowID = 1

// SQLStore keeps the document in two tables and rewrites both inside one
// transaction on Save.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(dialector gorm.Dialector) (*SQLStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&entryRow{}, &healthRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Load reads entries and health in one transaction so the pair always comes
// from the same Save.
func (s *SQLStore) Load(ctx context.Context) model.Document {
	var (
		rows   []entryRow
		health = model.DefaultHealth
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("seq").Find(&rows).Error; err != nil {
			return fmt.Errorf("read entries: %w", err)
		}
		var h healthRow
		err := tx.First(&h, healthRowID).Error
		switch {
		case err == nil:
			health = h.CurrentHealth
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("read health: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.From(ctx).Warn("store.sql.read failed, using default document", "err", err)
		return model.NewDocument()
	}

	doc := model.Document{
		Entries:       make([]model.CheckinEntry, 0, len(rows)),
		CurrentHealth: health,
	}
	for _, r := range rows {
		doc.Entries = append(doc.Entries, model.CheckinEntry{
			Date:      r.Date,
			MCQScore:  r.MCQScore,
			Sentiment: model.Sentiment(r.Sentiment),
			Mood:      model.Mood(r.Mood),
			FreeText:  r.FreeText,
			Feedback:  r.Feedback,
		})
	}
	return doc
}

func (s *SQLStore) Save(ctx context.Context, doc model.Document) error {
	rows := make([]entryRow, 0, len(doc.Entries))
	for i, e := range doc.Entries {
		rows = append(rows, entryRow{
			Seq:       i,
			Date:      e.Date,
			MCQScore:  e.MCQScore,
			Sentiment: string(e.Sentiment),
			Mood:      string(e.Mood),
			FreeText:  e.FreeText,
			Feedback:  e.Feedback,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("seq >= ?", 0).Delete(&entryRow{}).Error; err != nil {
			return fmt.Errorf("clear entries: %w", err)
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return fmt.Errorf("insert entries: %w", err)
			}
		}
		h := healthRow{ID: healthRowID, CurrentHealth: doc.CurrentHealth}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&h).Error; err != nil {
			return fmt.Errorf("upsert health: %w", err)
		}
		return nil
	})
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ DocumentStore = (*SQLStore)(nil)
