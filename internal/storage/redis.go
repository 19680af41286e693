package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"resume-analyzer-go/internal/config"
	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/tracing"
	"resume-analyzer-go/internal/types"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// ErrNotFound is returned when a key is not found in Redis.
// It wraps the underlying redis.Nil error for abstraction.
var ErrNotFound = redis.Nil

// 为Redis操作定义专用tracer
var redisTracer = otel.Tracer("resume-analyzer-go/storage/redis")

// Redis操作前缀采样率配置
var redisKeySamplingRates = map[string]float64{
	"app:file:":     0.1, // 文件去重操作采样10%
	"app:analysis:": 0.1, // 分析结果缓存采样10%
	"lock:":         0.5, // 锁操作采样50%
}

// 随机数生成器
var (
	rnd      *rand.Rand
	rndMutex sync.Mutex
)

func init() {
	source := rand.NewSource(time.Now().UnixNano())
	rnd = rand.New(source)
}

// shouldSampleRedisOp 根据key前缀决定是否需要创建span
func shouldSampleRedisOp(key string) bool {
	if key == "" {
		return false
	}

	for prefix, rate := range redisKeySamplingRates {
		if strings.HasPrefix(key, prefix) {
			return randFloat() < rate
		}
	}

	// 默认采样率5%
	return randFloat() < 0.05
}

// 生成0-1之间的随机数
func randFloat() float64 {
	rndMutex.Lock()
	defer rndMutex.Unlock()
	return rnd.Float64()
}

// Redis wraps the Redis client
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter creates a new Redis client connection
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	opt := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		// 连接池设置
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		// 超时设置
		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,

		// 重试设置
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoffMS) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoffMS) * time.Millisecond,
	}

	client := redis.NewClient(opt)

	// 添加OpenTelemetry钩子, 记录所有Redis操作
	if err := redisotel.InstrumentTracing(client); err != nil {
		return nil, fmt.Errorf("failed to instrument Redis with OpenTelemetry: %w", err)
	}

	// Ping to check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	return &Redis{
		Client: client,
		config: cfg,
	}, nil
}

// Close closes the Redis client connection
func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Ping checks the Redis connection
func (r *Redis) Ping(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	return r.Client.Ping(ctx).Err()
}

// GetMD5ExpireDuration 返回配置的MD5记录过期时间
func (r *Redis) GetMD5ExpireDuration() time.Duration {
	days := r.config.MD5RecordExpireDays
	if days <= 0 {
		days = 365 // 默认1年
	}
	return time.Duration(days) * 24 * time.Hour
}

// GetResultCacheDuration 返回配置的分析结果缓存过期时间
func (r *Redis) GetResultCacheDuration() time.Duration {
	hours := r.config.ResultCacheExpireHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// CheckAndAddFileMD5 检查文件MD5是否已存在，不存在则记录并关联submissionUUID。
// 返回 (是否已存在, 已存在时关联的submissionUUID, error)。整个检查-添加过程是原子的。
func (r *Redis) CheckAndAddFileMD5(ctx context.Context, md5Hex string, submissionUUID string) (exists bool, existingUUID string, err error) {
	ctx, span := redisTracer.Start(ctx, "Redis.CheckAndAddFileMD5",
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		semconv.DBSystemRedis,
		attribute.String("db.redis.database", fmt.Sprintf("%d", r.config.DB)),
		attribute.String("net.peer.name", r.config.Address),
		attribute.String("db.operation", "EVAL"),
		attribute.String("db.redis.key", constants.KeyFileMD5Set),
		attribute.String("db.redis.member", md5Hex),
	)

	if r.Client == nil {
		err = fmt.Errorf("redis client is not initialized")
		tracing.RecordError(span, err, tracing.ErrorTypeRedis)
		return false, "", err
	}

	mapKey := fmt.Sprintf(constants.KeyFileMD5ToSubmissionUUID, md5Hex)

	// 使用Lua脚本原子地完成: 检查集合成员 -> 不存在则加入并写映射
	script := `
		local exists = redis.call('SISMEMBER', KEYS[1], ARGV[1])
		if exists == 1 then
			return {1, redis.call('GET', KEYS[2]) or ''}
		end
		redis.call('SADD', KEYS[1], ARGV[1])
		redis.call('EXPIRE', KEYS[1], ARGV[3])
		redis.call('SET', KEYS[2], ARGV[2], 'EX', ARGV[3])
		return {0, ''}
	`

	expiry := int64(r.GetMD5ExpireDuration().Seconds())

	res, err := r.Client.Eval(ctx, script,
		[]string{constants.KeyFileMD5Set, mapKey},
		md5Hex, submissionUUID, expiry).Result()
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeRedis)
		return false, "", fmt.Errorf("执行原子检查和添加操作失败: %w", err)
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		err := fmt.Errorf("意外的Redis返回类型: %T", res)
		tracing.RecordError(span, err, tracing.ErrorTypeRedis)
		return false, "", err
	}

	existsVal, _ := vals[0].(int64)
	exists = existsVal == 1
	if s, ok := vals[1].(string); ok {
		existingUUID = s
	}

	span.SetAttributes(attribute.Bool("already_exists", exists))
	span.SetStatus(codes.Ok, "")
	return exists, existingUUID, nil
}

// RemoveFileMD5 从去重集合中移除文件MD5，用于失败回滚
func (r *Redis) RemoveFileMD5(ctx context.Context, md5Hex string) error {
	ctx, span := redisTracer.Start(ctx, "Redis.RemoveFileMD5",
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		semconv.DBSystemRedis,
		attribute.String("net.peer.name", r.config.Address),
		attribute.String("db.operation", "SREM"),
		attribute.String("db.redis.key", constants.KeyFileMD5Set),
		attribute.String("db.redis.member", md5Hex),
	)

	pipe := r.Client.Pipeline()
	remCmd := pipe.SRem(ctx, constants.KeyFileMD5Set, md5Hex)
	pipe.Del(ctx, fmt.Sprintf(constants.KeyFileMD5ToSubmissionUUID, md5Hex))
	_, err := pipe.Exec(ctx)

	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeRedis)
		return fmt.Errorf("从集合中移除MD5失败: %w", err)
	}

	span.SetAttributes(attribute.Int64("removed_count", remCmd.Val()))
	span.SetStatus(codes.Ok, "")
	return nil
}

// CacheAnalysisResult 将分析结果以JSON形式缓存
func (r *Redis) CacheAnalysisResult(ctx context.Context, submissionUUID string, result *types.AnalysisResult) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("序列化分析结果失败: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAnalysisResult, submissionUUID)
	return r.Set(ctx, key, string(data), r.GetResultCacheDuration())
}

// GetCachedAnalysisResult 读取缓存的分析结果，未命中时返回ErrNotFound
func (r *Redis) GetCachedAnalysisResult(ctx context.Context, submissionUUID string) (*types.AnalysisResult, error) {
	key := fmt.Sprintf(constants.KeyAnalysisResult, submissionUUID)
	val, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("反序列化缓存的分析结果失败: %w", err)
	}
	return &result, nil
}

// Get 获取键的值
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	if r.Client == nil {
		return "", fmt.Errorf("redis客户端未初始化")
	}

	var span trace.Span

	// 根据key前缀决定是否创建span
	if shouldSampleRedisOp(key) {
		ctx, span = redisTracer.Start(ctx, "Redis.Get", trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()

		span.SetAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", "GET"),
			attribute.String("db.redis.key", tracing.SafeRedisKey(key)),
			// 设置标志位，表示不要在子span中传播，避免与redisotel hook产生的span重复
			attribute.Bool("otel.propagate_to_child", false),
		)
	}

	val, err := r.Client.Get(ctx, key).Result()

	if span != nil {
		if err != nil {
			// 对于key不存在的情况，不应该算作错误
			if err == redis.Nil {
				span.SetStatus(codes.Ok, "key not found")
				span.SetAttributes(attribute.Bool("db.redis.key_exists", false))
			} else {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return "", err
		}

		span.SetAttributes(
			attribute.Bool("db.redis.key_exists", true),
			attribute.Int("db.redis.value_length", len(val)),
		)
		span.SetStatus(codes.Ok, "")
	}

	return val, err
}

// Set 设置键的值
func (r *Redis) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if r.Client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	var span trace.Span

	if shouldSampleRedisOp(key) {
		ctx, span = redisTracer.Start(ctx, "Redis.Set", trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()

		span.SetAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", "SET"),
			attribute.String("db.redis.key", tracing.SafeRedisKey(key)),
			attribute.Int("db.redis.value_length", len(value)),
			attribute.Bool("otel.propagate_to_child", false),
		)

		if expiration > 0 {
			span.SetAttributes(attribute.Int64("db.redis.expiration_ms", expiration.Milliseconds()))
		}
	}

	err := r.Client.Set(ctx, key, value, expiration).Err()

	if span != nil {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		span.SetStatus(codes.Ok, "")
	}

	return err
}
