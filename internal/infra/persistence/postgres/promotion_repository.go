package postgres

import (
	"context"

	"promo/internal/domain/entity"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/domain/repository"
	"promo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// promotionContentColumns are the columns an admin update may write. Counters are excluded.
var promotionContentColumns = []string{
	"title", "description", "image_url", "link_url",
	"target_type", "product_ref", "store_ref", "category_ref",
	"value", "value_type",
	"placements", "cities", "channels",
	"stacking", "display_order",
	"min_qty", "min_order_subtotal", "max_discount_amount",
	"start_date", "end_date", "is_active",
	"updated_at",
}

const displayOrder = "display_order ASC, created_at DESC, id ASC"

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{
		db: db,
	}
}

// FindByID retrieves a promotion by its unique ID.
func (repo *promotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a promotion with a row lock; it must run inside a transaction.
func (repo *promotionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *promotionRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Promotion, error) {
	var promotionM model.PromotionModel

	if err := db.Where("id = ?", id).First(&promotionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion by ID")
	}

	return toPromotionDomain(&promotionM), nil
}

// List retrieves promotions matching the filter.
func (repo *promotionRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Promotion, error) {
	query := repo.db.WithContext(ctx).Model(&model.PromotionModel{})

	if filter.Placement != nil {
		query = query.Where("? = ANY(placements)", filter.Placement.String())
	}
	if filter.TargetType != nil {
		query = query.Where("target_type = ?", filter.TargetType.String())
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var promotionModels []*model.PromotionModel
	if err := query.Order(displayOrder).Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return toPromotionDomains(promotionModels), nil
}

// FindCandidates pre-filters promotions for one placement, scope and business day.
func (repo *promotionRepository) FindCandidates(ctx context.Context, filter repository.CandidateFilter) ([]*entity.Promotion, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PromotionModel{}).
		Where("is_active = ?", true).
		Where("? = ANY(placements)", filter.Placement.String()).
		Where("start_date <= ? AND end_date >= ?", filter.DayEnd, filter.DayStart)

	if filter.City == "" {
		query = query.Where("cardinality(cities) = 0")
	} else {
		query = query.Where("(cardinality(cities) = 0 OR ? = ANY(cities))", filter.City)
	}

	if filter.Channel != "" {
		query = query.Where("? = ANY(channels)", filter.Channel.String())
	}

	var promotionModels []*model.PromotionModel
	if err := query.Order(displayOrder).Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find candidate promotions")
	}

	return toPromotionDomains(promotionModels), nil
}

// Create persists a new promotion.
func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	if promotion.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate promotion ID")
		}
		promotion.ID = id
	}

	promotionM := fromPromotionDomain(promotion)

	if err := repo.db.WithContext(ctx).Create(promotionM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return errors.Wrap(repository.ErrInvalidPromotion, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	// Update the entity with generated values
	promotion.CreatedAt = promotionM.CreatedAt
	promotion.UpdatedAt = promotionM.UpdatedAt

	return nil
}

// Update writes the content columns of an existing promotion.
func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := fromPromotionDomain(promotion)

	result := repo.db.WithContext(ctx).
		Model(&model.PromotionModel{ID: promotion.ID}).
		Select(promotionContentColumns).
		Updates(promotionM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrInvalidPromotion, result.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	promotion.UpdatedAt = promotionM.UpdatedAt

	return nil
}

// Delete soft-deletes a promotion.
func (repo *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PromotionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete promotion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// IncrementViews adds one view to each promotion in a single statement.
func (repo *promotionRepository) IncrementViews(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := repo.counterQuery(ctx).
		Where("id IN ?", ids).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
	if err != nil {
		return errors.Wrap(err, "failed to increment promotion views")
	}

	return nil
}

// IncrementClicks adds one click to the promotion.
func (repo *promotionRepository) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	return repo.incrementCounter(ctx, id, "clicks_count")
}

// IncrementConversions adds one conversion to the promotion.
func (repo *promotionRepository) IncrementConversions(ctx context.Context, id uuid.UUID) error {
	return repo.incrementCounter(ctx, id, "conversions_count")
}

func (repo *promotionRepository) incrementCounter(ctx context.Context, id uuid.UUID, column string) error {
	result := repo.counterQuery(ctx).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to increment %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// counterQuery targets the primary so increments never land on a replica.
func (repo *promotionRepository) counterQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.PromotionModel{})
}

func toPromotionDomains(promotionModels []*model.PromotionModel) []*entity.Promotion {
	promotions := make([]*entity.Promotion, 0, len(promotionModels))
	for _, promotionM := range promotionModels {
		promotions = append(promotions, toPromotionDomain(promotionM))
	}

	return promotions
}

// toPromotionDomain maps a GORM model to a domain entity.
func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	if data == nil {
		return nil
	}

	promotion := &entity.Promotion{
		ID:                data.ID,
		Title:             data.Title,
		Description:       data.Description,
		ImageURL:          data.ImageURL,
		LinkURL:           data.LinkURL,
		Target:            toTargetDomain(data),
		Value:             data.Value,
		Placements:        entity.PlacementsFromStrings(data.Placements),
		Cities:            []string(data.Cities),
		Channels:          entity.ChannelsFromStrings(data.Channels),
		Stacking:          entity.StackingPolicy(data.Stacking),
		Order:             data.DisplayOrder,
		MinQty:            data.MinQty,
		MinOrderSubtotal:  data.MinOrderSubtotal,
		MaxDiscountAmount: data.MaxDiscountAmount,
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		IsActive:          data.IsActive,
		ViewsCount:        data.ViewsCount,
		ClicksCount:       data.ClicksCount,
		ConversionsCount:  data.ConversionsCount,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.ValueType != nil {
		promotion.ValueType = entity.ValueType(*data.ValueType)
	}
	if promotion.Cities == nil {
		promotion.Cities = []string{}
	}

	return promotion
}

func toTargetDomain(data *model.PromotionModel) entity.Target {
	target := entity.Target{Type: entity.TargetType(data.TargetType)}

	var ref *string
	switch target.Type {
	case entity.TargetProduct:
		ref = data.ProductRef
	case entity.TargetStore:
		ref = data.StoreRef
	case entity.TargetCategory:
		ref = data.CategoryRef
	}
	if ref != nil {
		target.RefID = *ref
	}

	return target
}

// fromPromotionDomain maps a domain entity to a GORM model.
func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	if data == nil {
		return nil
	}

	promotionM := &model.PromotionModel{
		ID:                data.ID,
		Title:             data.Title,
		Description:       data.Description,
		ImageURL:          data.ImageURL,
		LinkURL:           data.LinkURL,
		TargetType:        data.Target.Type.String(),
		Value:             data.Value,
		Placements:        data.Placements.ToStrings(),
		Cities:            append(pq.StringArray{}, data.Cities...),
		Channels:          data.Channels.ToStrings(),
		Stacking:          data.Stacking.String(),
		DisplayOrder:      data.Order,
		MinQty:            data.MinQty,
		MinOrderSubtotal:  data.MinOrderSubtotal,
		MaxDiscountAmount: data.MaxDiscountAmount,
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		IsActive:          data.IsActive,
		ViewsCount:        data.ViewsCount,
		ClicksCount:       data.ClicksCount,
		ConversionsCount:  data.ConversionsCount,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.ValueType != "" {
		valueType := data.ValueType.String()
		promotionM.ValueType = &valueType
	}

	ref := data.Target.RefID
	switch data.Target.Type {
	case entity.TargetProduct:
		promotionM.ProductRef = &ref
	case entity.TargetStore:
		promotionM.StoreRef = &ref
	case entity.TargetCategory:
		promotionM.CategoryRef = &ref
	}

	return promotionM
}
