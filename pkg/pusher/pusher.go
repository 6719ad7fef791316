// Package pusher is the high-level send API: it wraps the legacy FCM
// client with logging, metrics and nop mode.
package pusher

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pushwork/fcm-push-client/pkg/metric"
	"github.com/pushwork/fcm-push-client/pkg/provider/legacyfcm"
	"go.uber.org/zap"
)

var (
	ErrEmptyToken     = errors.New("empty device token")
	ErrEmptyTopic     = errors.New("empty topic name")
	ErrEmptyCondition = errors.New("empty condition expression")
)

type Pusher struct {
	projectID string
	nopMode   bool
	dryRun    bool
	logger    *zap.Logger
	metric    *metric.Provider
	client    *legacyfcm.Client
}

func New(cfg *Config, logger *zap.Logger, svcMetric *metric.Service) (*Pusher, error) {

	opts := make([]legacyfcm.Option, 0, 3)
	if cfg.Endpoint != "" {
		opts = append(opts, legacyfcm.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, legacyfcm.WithTimeout(cfg.Timeout))
	}
	if len(cfg.Proxies) > 0 {
		opts = append(opts, legacyfcm.WithProxies(cfg.Proxies))
	}

	client, err := legacyfcm.New(cfg.Key, opts...)
	if err != nil {
		return nil, err
	}

	providerMetric, err := svcMetric.GetProviderMetrics(cfg.ProjectID)
	if err != nil {
		return nil, err
	}

	return &Pusher{
		projectID: cfg.ProjectID,
		nopMode:   cfg.NopMode,
		dryRun:    cfg.DryRun,
		logger:    logger.With(zap.String("project id", cfg.ProjectID)),
		metric:    providerMetric,
		client:    client,
	}, nil
}

func (p *Pusher) ProjectID() string {
	return p.projectID
}

func (p *Pusher) NoOpMode() bool {
	return p.nopMode
}

// NotifyDevice sends the message to a single device.
func (p *Pusher) NotifyDevice(ctx context.Context, registrationID string, msg *legacyfcm.Message) (*legacyfcm.Response, error) {

	if registrationID == "" {
		return nil, ErrEmptyToken
	}

	m := clone(msg)
	m.RegistrationIDs = []string{registrationID}
	m.Topic = ""
	m.Condition = ""

	return p.sendOne(ctx, m)
}

// NotifyDevices sends the message to a list of devices, one request per
// chunk of at most legacyfcm.MaxRecipients ids.
func (p *Pusher) NotifyDevices(ctx context.Context, registrationIDs []string, msg *legacyfcm.Message) ([]*legacyfcm.Response, error) {

	if len(registrationIDs) == 0 {
		return nil, ErrEmptyToken
	}

	m := clone(msg)
	m.RegistrationIDs = registrationIDs
	m.Topic = ""
	m.Condition = ""

	return p.send(ctx, m)
}

// NotifyTopic sends the message to every subscriber of the topic.
func (p *Pusher) NotifyTopic(ctx context.Context, topic string, msg *legacyfcm.Message) (*legacyfcm.Response, error) {

	if topic == "" {
		return nil, ErrEmptyTopic
	}

	m := clone(msg)
	m.RegistrationIDs = nil
	m.Topic = topic
	m.Condition = ""

	return p.sendOne(ctx, m)
}

// NotifyCondition sends the message to devices matching a boolean
// expression over topic subscriptions.
func (p *Pusher) NotifyCondition(ctx context.Context, condition string, msg *legacyfcm.Message) (*legacyfcm.Response, error) {

	if condition == "" {
		return nil, ErrEmptyCondition
	}

	m := clone(msg)
	m.RegistrationIDs = nil
	m.Topic = ""
	m.Condition = condition

	return p.sendOne(ctx, m)
}

// SendDataMessage sends a silent data-only message. Without a message
// body the payload is marked content-available, waking iOS apps in the
// background.
func (p *Pusher) SendDataMessage(ctx context.Context, registrationIDs []string, data map[string]interface{}) ([]*legacyfcm.Response, error) {

	return p.NotifyDevices(ctx, registrationIDs, &legacyfcm.Message{
		Data: data,
	})
}

func (p *Pusher) sendOne(ctx context.Context, msg *legacyfcm.Message) (*legacyfcm.Response, error) {

	responses, err := p.send(ctx, msg)
	if err != nil {
		return nil, err
	}

	if len(responses) == 0 {
		return nil, nil // nop mode
	}

	return responses[0], nil
}

func (p *Pusher) send(ctx context.Context, msg *legacyfcm.Message) ([]*legacyfcm.Response, error) {

	if p.dryRun {
		msg.DryRun = true
	}

	l := p.logger.With(zap.String("target", describeTarget(msg)))

	if p.nopMode {
		l.Info("nop mode", zap.Int("recipients", len(msg.RegistrationIDs)))
		return []*legacyfcm.Response{}, nil
	}

	timerCancel := p.metric.NewIOTimer()
	responses, err := p.client.Send(ctx, msg)
	timerCancel()

	if err != nil {
		p.metric.FailsInc()
		l.Error("failed to send", zap.Error(err))
		return nil, err
	}

	p.metric.SuccessInc()

	var success, failure int
	for _, resp := range responses {
		success += resp.Success
		failure += resp.Failure
	}

	l.Info("success send",
		zap.Int("chunks", len(responses)),
		zap.Int("success", success),
		zap.Int("failure", failure))

	return responses, nil
}

// describeTarget names the addressing mode for logs without leaking
// device tokens.
func describeTarget(msg *legacyfcm.Message) string {

	switch {
	case msg.Condition != "":
		return "condition"
	case msg.Topic != "":
		return "topic " + msg.Topic
	case len(msg.RegistrationIDs) == 1:
		return "device " + TokenHash(msg.RegistrationIDs[0])
	default:
		return strconv.Itoa(len(msg.RegistrationIDs)) + " devices"
	}
}

func clone(msg *legacyfcm.Message) *legacyfcm.Message {

	m := legacyfcm.Message{}
	if msg != nil {
		m = *msg
	}

	return &m
}
