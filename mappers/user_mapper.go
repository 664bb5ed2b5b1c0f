package mappers

import (
	"booking-backend/domain"
	"booking-backend/models"
)

func UserToDomain(record models.User) (*domain.User, error) {
	if err := checkRecord(record, userMessages); err != nil {
		return nil, err
	}
	return domain.NewUser(record.ID, record.Name)
}

func UserToPersistence(user *domain.User) models.User {
	return models.User{
		ID:   user.ID(),
		Name: user.Name(),
	}
}
