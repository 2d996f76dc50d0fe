package kv

import (
	"furnishop/internal/domain/entity"
	"furnishop/internal/infra/persistence/model"
)

func toProductDomain(data model.ProductModel) entity.Product {
	return entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Category:    entity.Category(data.Category),
		Description: data.Description,
		Image:       data.Image,
		Featured:    data.Featured,
	}
}

func fromProductDomain(data entity.Product) model.ProductModel {
	return model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Category:    data.Category.String(),
		Description: data.Description,
		Image:       data.Image,
		Featured:    data.Featured,
	}
}

func toCartItemsDomain(data []model.CartItemModel) []entity.CartItem {
	items := make([]entity.CartItem, 0, len(data))
	for _, item := range data {
		items = append(items, entity.CartItem{
			Product:  toProductDomain(item.Product),
			Quantity: item.Quantity,
		})
	}

	return items
}

func fromCartItemsDomain(data []entity.CartItem) []model.CartItemModel {
	items := make([]model.CartItemModel, 0, len(data))
	for _, item := range data {
		items = append(items, model.CartItemModel{
			Product:  fromProductDomain(item.Product),
			Quantity: item.Quantity,
		})
	}

	return items
}

func toCredentialDomain(data model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.Password,
		Role:         entity.Role(data.Role),
	}
}

func fromCredentialDomain(data *entity.Credential) model.CredentialModel {
	return model.CredentialModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.PasswordHash,
		Role:     data.Role.String(),
	}
}

func toOrderDomain(data model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		Items:         toCartItemsDomain(data.Items),
		Total:         data.Total,
		Status:        entity.OrderStatus(data.Status),
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		Date:          data.Date,
		Address:       data.Address,
	}
}

func fromOrderDomain(data *entity.Order) model.OrderModel {
	return model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Items:         fromCartItemsDomain(data.Items),
		Total:         data.Total,
		Status:        data.Status.String(),
		PaymentMethod: data.PaymentMethod.String(),
		Date:          data.Date,
		Address:       data.Address,
	}
}
