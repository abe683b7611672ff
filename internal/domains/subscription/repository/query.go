package repository

import (
	"fmt"
	"journal/internal/domains/subscription/model"
	gRepo "journal/shared/repository"
)

// ListSubscriptions returns every stored subscription, oldest first.
func ListSubscriptions() gRepo.Statement {
	return gRepo.Statement{
		Query: fmt.Sprintf("SELECT * FROM %s ORDER BY %s", model.TableName, model.FieldID),
	}
}
