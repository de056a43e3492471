package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kizuna-community/kizuna-api/background"
	"github.com/kizuna-community/kizuna-api/utils"
)

var (
	mongoClient *mongo.Client
	manager     *background.BackgroundManager
)

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
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

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			mongoClient.Disconnect(ctx)
		}
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	utils.InitI18NBundle()

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	var conf = &config.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "kizuna_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	taskServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	manager = background.New(mongoClient, taskServer)
	panicIfError(manager.RegisterTask("broadcast_request", manager.BroadcastNewRequest))
	panicIfError(manager.RegisterTask("notify_request_claimed", manager.NotifyRequestClaimed))
	panicIfError(manager.RegisterTask("notify_request_fulfilled", manager.NotifyRequestFulfilled))
	panicIfError(manager.RegisterTask("expire_enroute_requests", manager.ExpireEnrouteRequests))

	if err := manager.Run(); err != nil {
		log.Panic(err)
	}
}
