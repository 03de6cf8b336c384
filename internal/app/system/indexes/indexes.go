// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	for _, coll := range []string{"home_content", "about_content", "contact_page_content", "projects_content"} {
		if err := ensureSingleton(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}
	if err := ensureContactMessages(ctx, db); err != nil {
		problems = append(problems, "contact_messages: "+err.Error())
	}
	if err := ensureAdminAccounts(ctx, db); err != nil {
		problems = append(problems, "admin_accounts: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureSingleton creates the unique index on the singleton marker. With this
// in place a racing get-or-create cannot insert a second content document.
func ensureSingleton(ctx context.Context, db *mongo.Database, coll string) error {
	return createIndexes(ctx, db, coll, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "singleton", Value: 1}},
			Options: options.Index().SetName("uniq_singleton").SetUnique(true),
		},
	})
}

func ensureContactMessages(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "contact_messages", []mongo.IndexModel{
		{
			// List view filters by status, newest first.
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_status_created"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created"),
		},
	})
}

func ensureAdminAccounts(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "admin_accounts", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	})
}

// createIndexes creates the given indexes, tolerating the "already exists"
// responses MongoDB returns on re-runs with identical definitions.
func createIndexes(ctx context.Context, db *mongo.Database, coll string, indexModels []mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, indexModels)
	if err != nil && !isIndexExistsErr(err) {
		return err
	}
	zap.L().Debug("indexes ensured", zap.String("collection", coll), zap.Int("count", len(indexModels)))
	return nil
}

func isIndexExistsErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "indexoptionsconflict")
}
