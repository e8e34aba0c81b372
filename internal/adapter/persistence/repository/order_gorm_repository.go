package repository

import (
	"context"
	"time"

	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRow struct {
	ID              string    `gorm:"column:id;primaryKey"`
	CustomerID      string    `gorm:"column:customer_id"`
	OrderKey        string    `gorm:"column:order_key"`
	Total           float64   `gorm:"column:total"`
	Currency        string    `gorm:"column:currency"`
	Status          string    `gorm:"column:status;index"`
	BillingEmail    string    `gorm:"column:billing_email"`
	BillingPhone    string    `gorm:"column:billing_phone"`
	BillingFirst    string    `gorm:"column:billing_first_name"`
	BillingLast     string    `gorm:"column:billing_last_name"`
	BillingCountry  string    `gorm:"column:billing_country"`
	BillingState    string    `gorm:"column:billing_state"`
	BillingCity     string    `gorm:"column:billing_city"`
	BillingPostcode string    `gorm:"column:billing_postcode"`
	BillingAddress1 string    `gorm:"column:billing_address_1"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (orderRow) TableName() string { return "orders" }

type orderMetaRow struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	OrderID   string `gorm:"column:order_id;uniqueIndex:idx_order_meta_order_key"`
	MetaKey   string `gorm:"column:meta_key;uniqueIndex:idx_order_meta_order_key;index:idx_order_meta_key_value"`
	MetaValue string `gorm:"column:meta_value;index:idx_order_meta_key_value"`
}

func (orderMetaRow) TableName() string { return "order_meta" }

type orderNoteRow struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	OrderID   string    `gorm:"column:order_id;index"`
	Note      string    `gorm:"column:note"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (orderNoteRow) TableName() string { return "order_notes" }

// OrderGormModels lists the tables the repository expects, for AutoMigrate.
func OrderGormModels() []any {
	return []any{&orderRow{}, &orderMetaRow{}, &orderNoteRow{}}
}

// OrderGormRepository reads and mutates platform orders in a relational
// schema where metadata lives in a key/value side table (order_meta).
type OrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return entities.Order{}, err
	}
	if len(rows) == 0 {
		return entities.Order{}, nil
	}

	var meta []orderMetaRow
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Find(&meta).Error; err != nil {
		return entities.Order{}, err
	}
	var notes []orderNoteRow
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Order("id").Find(&notes).Error; err != nil {
		return entities.Order{}, err
	}
	return fromOrderRow(rows[0], meta, notes), nil
}

func (r *OrderGormRepository) FindByMetadata(ctx context.Context, key, value string) (entities.Order, error) {
	var meta []orderMetaRow
	err := r.db.WithContext(ctx).
		Where("meta_key = ? AND meta_value = ?", key, value).
		Limit(1).
		Find(&meta).Error
	if err != nil {
		return entities.Order{}, err
	}
	if len(meta) == 0 {
		return entities.Order{}, nil
	}
	return r.GetByID(ctx, meta[0].OrderID)
}

func (r *OrderGormRepository) UpdateMetadata(ctx context.Context, orderID, key, value string) error {
	row := orderMetaRow{OrderID: orderID, MetaKey: key, MetaValue: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "meta_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"meta_value"}),
	}).Create(&row).Error
}

func (r *OrderGormRepository) GetMetadata(ctx context.Context, orderID, key string) (string, error) {
	var meta []orderMetaRow
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND meta_key = ?", orderID, key).
		Limit(1).
		Find(&meta).Error
	if err != nil {
		return "", err
	}
	if len(meta) == 0 {
		return "", nil
	}
	return meta[0].MetaValue, nil
}

// SetStatus updates the row only when its status differs and records the
// note in the same transaction.
func (r *OrderGormRepository) SetStatus(ctx context.Context, orderID string, status entities.OrderStatus, note string) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Model(&orderRow{}).
			Where("id = ? AND status <> ?", orderID, string(status)).
			Updates(map[string]any{"status": string(status), "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return tx.Create(&orderNoteRow{OrderID: orderID, Note: note, CreatedAt: now}).Error
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (r *OrderGormRepository) AddNote(ctx context.Context, orderID, note string) error {
	return r.db.WithContext(ctx).Create(&orderNoteRow{OrderID: orderID, Note: note, CreatedAt: time.Now().UTC()}).Error
}

func fromOrderRow(row orderRow, meta []orderMetaRow, notes []orderNoteRow) entities.Order {
	o := entities.Order{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		OrderKey:   row.OrderKey,
		Total:      row.Total,
		Currency:   row.Currency,
		Status:     entities.OrderStatus(row.Status),
		Billing: entities.BillingAddress{
			Email:     row.BillingEmail,
			Phone:     row.BillingPhone,
			FirstName: row.BillingFirst,
			LastName:  row.BillingLast,
			Country:   row.BillingCountry,
			State:     row.BillingState,
			City:      row.BillingCity,
			Postcode:  row.BillingPostcode,
			Address1:  row.BillingAddress1,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if len(meta) > 0 {
		o.Meta = make(map[string]string, len(meta))
		for _, m := range meta {
			o.Meta[m.MetaKey] = m.MetaValue
		}
	}
	for _, n := range notes {
		o.Notes = append(o.Notes, entities.OrderNote{Note: n.Note, CreatedAt: n.CreatedAt})
	}
	return o
}
