package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec names one index the service relies on.
type IndexSpec struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes 返回服务依赖的索引。唯一索引让并发的重复 e_id / email 写入由存储层拒绝。
func Indexes() []IndexSpec {
	return []IndexSpec{
		{
			Collection: EmployerCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "e_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_e_id"),
			},
		},
		{
			Collection: UserCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		{
			Collection: ApplicationCollection,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetName("idx_user_id"),
			},
		},
	}
}

// EnsureIndexes creates missing indexes. Creating an existing index is a no-op in MongoDB.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, spec := range Indexes() {
		if _, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, spec.Model); err != nil {
			return fmt.Errorf("create index on %s: %w", spec.Collection, err)
		}
	}
	return nil
}
