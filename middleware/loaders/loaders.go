package dataloader

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/reporting"
	"github.com/complyware/vendorback/services/mongo"
)

// Loaders batches the user lookups that fan out during report assembly:
// resolving fifty vendors' consultants should be one query, not fifty.
type Loaders struct {
	UserLoader *dataloader.Loader[string, *models.User]
}

func NewLoaders(userService *mongo.UserService) *Loaders {
	return &Loaders{
		UserLoader: newUserLoader(userService),
	}
}

func newUserLoader(service *mongo.UserService) *dataloader.Loader[string, *models.User] {
	return dataloader.NewBatchedLoader(
		func(ctx context.Context, keys []string) []*dataloader.Result[*models.User] {
			ids := make([]primitive.ObjectID, len(keys))
			for i, key := range keys {
				id, err := primitive.ObjectIDFromHex(key)
				if err != nil {
					return resultsWithError[*models.User](len(keys), fmt.Errorf("invalid user ID: %s", key))
				}
				ids[i] = id
			}

			filter := primitive.M{"_id": primitive.M{"$in": ids}}

			users, err := service.FindUsers(ctx, filter)
			if err != nil {
				return resultsWithError[*models.User](len(keys), err)
			}

			userMap := make(map[primitive.ObjectID]*models.User, len(users))
			for _, user := range users {
				userMap[user.ID] = user
			}

			results := make([]*dataloader.Result[*models.User], len(keys))
			for i, id := range ids {
				if user, exists := userMap[id]; exists {
					results[i] = &dataloader.Result[*models.User]{Data: user}
				} else {
					results[i] = &dataloader.Result[*models.User]{Error: fmt.Errorf("user not found: %s", id.Hex())}
				}
			}
			return results
		},
		dataloader.WithWait[string, *models.User](2*time.Millisecond),
	)
}

// LoadUser resolves one user through the batch loader.
func (l *Loaders) LoadUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return l.UserLoader.Load(ctx, id.Hex())()
}

// WrapSource routes a Source's single-user lookups through the batch
// loader so report assembly coalesces them.
func (l *Loaders) WrapSource(src reporting.Source) reporting.Source {
	return &batchedSource{Source: src, loaders: l}
}

type batchedSource struct {
	reporting.Source
	loaders *Loaders
}

func (b *batchedSource) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return b.loaders.LoadUser(ctx, id)
}

func resultsWithError[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
