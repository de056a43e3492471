package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	countdownWorker "github.com/kizuna-community/kizuna-api/background/countdown"
	cadence "github.com/kizuna-community/kizuna-api/external/cadence"
	"github.com/kizuna-community/kizuna-api/store"
	"github.com/kizuna-community/kizuna-api/utils"
)

var logger *zap.Logger

func init() {
	logger = buildLogger()
}

func buildLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zapcore.InfoLevel)

	var err error
	logger, err := config.Build()
	if err != nil {
		panic("Failed to setup logger")
	}

	return logger
}

func initSentry() {
	// Sentry
	logger.Info("Initializing sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		logger.Panic("fail to initialize sentry", zap.Error(err))
	}
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("kizuna")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initSentry()

	utils.InitI18NBundle()

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		logger.Panic("create mongo client with error", zap.Error(err))
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		logger.Panic("connect mongo database with error", zap.Error(err))
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	service, err := cadence.NewWorkflowServiceClient(viper.GetString("cadence.conn"))
	if err != nil {
		logger.Panic("connect cadence frontend with error", zap.Error(err))
	}

	worker := countdownWorker.NewCountdownWorker(viper.GetString("cadence.domain"), mongoStore)
	worker.Register()
	worker.Start(service, logger)
}
