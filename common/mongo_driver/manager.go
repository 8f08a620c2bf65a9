package mongo_driver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	ErrInitInvalidConfig = errors.New("invalid mongo config")
	ErrNotConnected      = errors.New("mongo client not connected")
)

// MongoDBManager mongoDB 管理器
type MongoDBManager struct {
	name   string             // 节点名称
	config *MongoDriverConfig // 配置
	client *mongo.Client      // mongoDB 客户端
}

// NewMongoDBManager 创建管理器
func NewMongoDBManager(name string) *MongoDBManager {
	return &MongoDBManager{
		name: name,
	}
}

// InitConfiguration 初始化配置并建立连接
func (m *MongoDBManager) InitConfiguration(dbConfig *MongoDriverConfig) error {
	if dbConfig == nil || dbConfig.URI == "" || dbConfig.Database == "" {
		return ErrInitInvalidConfig
	}
	dbConfig.normalize()

	bsonOptions := &options.BSONOptions{
		NilSliceAsEmpty: true, // nil Slice 的值作为空值处理
		NilMapAsEmpty:   true, // nil Map 的值作为空值处理
	}
	clientOptions := options.Client().
		ApplyURI(dbConfig.URI).
		SetBSONOptions(bsonOptions).
		SetMaxPoolSize(dbConfig.MaxPoolSize).
		SetMinPoolSize(dbConfig.MinPoolSize).
		SetConnectTimeout(time.Duration(dbConfig.ConnectTimeout) * time.Second)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		slog.Error("[MongoDBManager] connect failed", "name", m.name, "err", err)
		return err
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), time.Duration(dbConfig.ConnectTimeout)*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx, nil); err != nil {
		slog.Error("[MongoDBManager] ping failed", "name", m.name, "err", err)
		return err
	}

	m.config = dbConfig
	m.client = client
	slog.Info("[MongoDBManager] connected", "name", m.name, "database", dbConfig.Database)
	return nil
}

// Collection 获取集合
func (m *MongoDBManager) Collection(collection string) (*mongo.Collection, error) {
	if m.client == nil {
		return nil, ErrNotConnected
	}
	return m.client.Database(m.config.Database).Collection(collection), nil
}

// Close 断开连接
func (m *MongoDBManager) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		slog.Error("[MongoDBManager] disconnect failed", "name", m.name, "err", err)
		return err
	}
	m.client = nil
	return nil
}
