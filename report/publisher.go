package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bikeshare/communication"
	"bikeshare/domain/business/queryresponse"

	log "github.com/sirupsen/logrus"
)

const (
	contentTypeJson = "application/json"
	defaultTimeout  = 5 * time.Second
)

// PublisherConfig
// + Enabled: publish every report when true
// + URLEnv: environment variable that holds the RabbitMQ URL
// + Exchange: exchange where reports are published
// + RoutingKeyPrefix: reports are published with routing key <prefix>.<city>
// + Timeout: max time to publish a report
type PublisherConfig struct {
	Enabled          bool                                    `yaml:"enabled"`
	URLEnv           string                                  `yaml:"url_env"`
	Exchange         communication.ExchangeDeclarationConfig `yaml:"exchange"`
	RoutingKeyPrefix string                                  `yaml:"routing_key_prefix"`
	Timeout          time.Duration                           `yaml:"timeout"`
}

type exchangePublisher interface {
	DeclareExchanges(exchangesConfig []communication.ExchangeDeclarationConfig) error
	PublishMessageInExchange(ctx context.Context, config communication.PublishingConfig, message []byte) error
	Close() error
}

// Publisher sends query responses as JSON to a RabbitMQ exchange
type Publisher struct {
	rabbitMQ exchangePublisher
	config   PublisherConfig
}

// NewPublisher declares the reports exchange and returns a Publisher that uses it
func NewPublisher(rabbitMQ exchangePublisher, publisherConfig PublisherConfig) (*Publisher, error) {
	err := rabbitMQ.DeclareExchanges([]communication.ExchangeDeclarationConfig{publisherConfig.Exchange})
	if err != nil {
		return nil, err
	}

	if publisherConfig.Timeout <= 0 {
		publisherConfig.Timeout = defaultTimeout
	}

	log.Infof("[stage: publisher][exchange: %s][status: OK] exchange declared correctly!", publisherConfig.Exchange.Name)
	return &Publisher{
		rabbitMQ: rabbitMQ,
		config:   publisherConfig,
	}, nil
}

// PublishReport publishes response with routing key <prefix>.<city>
func (p *Publisher) PublishReport(ctx context.Context, response *queryresponse.QueryResponse) error {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error marshalling query response %s: %w", response.QueryID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	publishingConfig := communication.PublishingConfig{
		Exchange:    p.config.Exchange.Name,
		RoutingKey:  p.GetRoutingKey(response.Metadata.GetCity()),
		ContentType: contentTypeJson,
	}
	err = p.rabbitMQ.PublishMessageInExchange(ctx, publishingConfig, responseBytes)
	if err != nil {
		return fmt.Errorf("error publishing query response %s: %w", response.QueryID, err)
	}

	log.Debugf("[stage: publisher][query: %s][status: OK] report published with routing key %s", response.QueryID, publishingConfig.RoutingKey)
	return nil
}

// GetRoutingKey returns the routing key for the reports of a city, e.g report.new-york-city
func (p *Publisher) GetRoutingKey(city string) string {
	return p.config.RoutingKeyPrefix + "." + strings.ReplaceAll(strings.ToLower(city), " ", "-")
}

func (p *Publisher) Kill() error {
	return p.rabbitMQ.Close()
}
