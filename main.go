package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pushwork/fcm-push-client/pkg/info"
	"github.com/pushwork/fcm-push-client/pkg/metric"
	"github.com/pushwork/fcm-push-client/pkg/provider/legacyfcm"
	"github.com/pushwork/fcm-push-client/pkg/pusher"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var opts struct {
	ConfigLocation string   `short:"c" long:"config" description:"Config file location"`
	Tokens         []string `short:"t" long:"token" description:"Device registration id (repeatable)"`
	Topic          string   `long:"topic" description:"Topic name"`
	Condition      string   `long:"condition" description:"Condition expression over topic subscriptions"`
	Title          string   `long:"title" description:"Notification title"`
	Body           string   `long:"body" description:"Notification body"`
	DryRun         bool     `long:"dry-run" description:"Validate the message without delivering it"`
	Version        bool     `long:"version" description:"Print build info and exit"`
}

func main() {

	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		log.Fatal("failed to parse arguments:", err)
	}

	if opts.Version {
		fmt.Println(info.New("fcm-push-client"))
		return
	}

	if opts.ConfigLocation == "" {
		log.Fatal("config file location is required")
	}

	logCfg := zap.NewProductionConfig()
	logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatal("failed to create logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	v := viper.New()
	v.SetConfigFile(opts.ConfigLocation)
	if err := v.ReadInConfig(); err != nil {
		log.Fatal("failed to parse config:", err)
	}

	cfg, err := pusher.NewConfig(v)
	if err != nil {
		log.Fatal("failed to parse config:", err)
	}

	if opts.DryRun {
		cfg.DryRun = true
	}

	p, err := pusher.New(cfg, logger, metric.New())
	if err != nil {
		log.Fatal("failed to create pusher:", err)
	}

	if err := send(context.Background(), p, logger); err != nil {
		logger.Fatal("send failed", zap.Error(err))
	}
}

func send(ctx context.Context, p *pusher.Pusher, logger *zap.Logger) error {

	msg := &legacyfcm.Message{
		Title: opts.Title,
		Body:  opts.Body,
	}

	var responses []*legacyfcm.Response
	var err error

	switch {
	case opts.Condition != "":
		var resp *legacyfcm.Response
		resp, err = p.NotifyCondition(ctx, opts.Condition, msg)
		if resp != nil {
			responses = append(responses, resp)
		}

	case opts.Topic != "":
		var resp *legacyfcm.Response
		resp, err = p.NotifyTopic(ctx, opts.Topic, msg)
		if resp != nil {
			responses = append(responses, resp)
		}

	case len(opts.Tokens) > 0:
		responses, err = p.NotifyDevices(ctx, opts.Tokens, msg)

	default:
		return fmt.Errorf("no push target: use --token, --topic or --condition")
	}

	if err != nil {
		return err
	}

	for i, resp := range responses {
		logger.Info("chunk result",
			zap.Int("chunk", i),
			zap.Int("success", resp.Success),
			zap.Int("failure", resp.Failure),
			zap.Int("canonical ids", resp.CanonicalIDs))
	}

	return nil
}
