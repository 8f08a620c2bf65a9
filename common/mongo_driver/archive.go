package mongo_driver

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"go_collections/common/network/statshub"
)

var (
	// 断言 ArchiveCollection 实现了 statshub.ArchiveStore
	_ statshub.ArchiveStore = (*ArchiveCollection)(nil)
)

// ArchiveCollection 快照归档集合
type ArchiveCollection struct {
	coll *mongo.Collection
}

// NewArchiveCollection 创建归档集合
func NewArchiveCollection(manager *MongoDBManager, collection string) (*ArchiveCollection, error) {
	coll, err := manager.Collection(collection)
	if err != nil {
		return nil, err
	}
	return &ArchiveCollection{
		coll: coll,
	}, nil
}

// Insert 写入一条快照
func (ac *ArchiveCollection) Insert(ctx context.Context, snapshot statshub.Snapshot) error {
	_, err := ac.coll.InsertOne(ctx, snapshot)
	return err
}

// Recent 获取目标最近的快照 按时间倒序
func (ac *ArchiveCollection) Recent(ctx context.Context, target string, limit int64) ([]statshub.Snapshot, error) {
	filter := bson.D{{Key: "target", Value: target}}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := ac.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	snapshots := make([]statshub.Snapshot, 0, limit)
	if err = cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
