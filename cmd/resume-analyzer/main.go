package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/api/handler"
	"resume-analyzer-go/internal/api/router"
	"resume-analyzer-go/internal/config"
	appLogger "resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/storage"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

var (
	version     = "1.0.0"              //nolint:gochecknoglobals
	serviceName = "resume-analyzer-go" //nolint:gochecknoglobals
)

// @title Resume Analyzer API
// @version 1.0
// @description 简历解析与JD匹配分析服务的API文档
// @BasePath /api/v1
func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	shutdownTracing := initTracerProvider()
	defer shutdownTracing()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	parserOptions := []parser.ParserOption{
		parser.WithLogger(appLogger.Logger),
	}
	if cfg.Parser.TimeoutSeconds > 0 {
		parserOptions = append(parserOptions, parser.WithTimeout(time.Duration(cfg.Parser.TimeoutSeconds)*time.Second))
	}
	resumeParser := parser.NewHTTPResumeParser(cfg.Parser.ServiceURL, parserOptions...)
	glog.Infof("简历解析客户端初始化成功，服务地址: %s", cfg.Parser.ServiceURL)

	engine := analyzer.NewEngine(nil)
	glog.Info("分析引擎初始化成功 (使用内置技能目录)")

	resumeHandler := handler.NewResumeHandler(cfg, storageManager, resumeParser, engine)
	glog.Info("ResumeHandler初始化成功")

	go func() {
		if storageManager.RabbitMQ == nil {
			glog.Warn("RabbitMQ未初始化，跳过分析消费者启动")
			return
		}
		glog.Infof("启动分析消费者，队列: %s, 预取数: %d", cfg.RabbitMQ.AnalyzeQueue, cfg.RabbitMQ.PrefetchCount)
		if _, err := resumeHandler.StartAnalyzeConsumer(ctx); err != nil {
			glog.Errorf("启动分析消费者失败: %v", err)
		}
	}()

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 按配置初始化zerolog全局日志，并将Hertz的hlog桥接到同一个实例
func initLogger(cfg *config.Config) {
	appLogger.Init(appLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	appLogger.Logger = appLogger.Logger.With().
		Str("app", serviceName).
		Str("version", version).
		Logger()

	hertzCompatibleLogger := hertzadapter.From(appLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)

	switch cfg.Logger.Level {
	case "debug":
		glog.SetLevel(glog.LevelDebug)
	case "warn":
		glog.SetLevel(glog.LevelWarn)
	case "error":
		glog.SetLevel(glog.LevelError)
	default:
		glog.SetLevel(glog.LevelInfo)
	}
}

// initTracerProvider 注册全局TracerProvider，供存储层的span使用。
// 未配置导出器时span只在进程内采样，不会上报。
func initTracerProvider() func() {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			appLogger.Warn().Err(err).Msg("关闭TracerProvider失败")
		}
	}
}
