package flow

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/document"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/flowbridge/flowbridge/internal/config"
)

// errNoResponse is the error message surfaced when the service
// returns no response stream at all.
const errNoResponse = "No response from flow"

// eventStream is the portion of the Bedrock response stream the client consumes.
type eventStream interface {
	Events() <-chan bedrocktypes.FlowResponseStream
	Err() error
	Close() error
}

// invoker performs the InvokeFlow call. The real implementation wraps
// the Bedrock agent runtime client; tests substitute fakes.
type invoker interface {
	invokeFlow(ctx context.Context, in *bedrockagentruntime.InvokeFlowInput) (eventStream, error)
}

type sdkInvoker struct {
	api *bedrockagentruntime.Client
}

func (s *sdkInvoker) invokeFlow(ctx context.Context, in *bedrockagentruntime.InvokeFlowInput) (eventStream, error) {
	out, err := s.api.InvokeFlow(ctx, in)
	if err != nil {
		return nil, err
	}
	stream := out.GetStream()
	if stream == nil {
		return nil, nil
	}
	return stream, nil
}

// Client invokes a single preconfigured Bedrock flow and normalizes
// its streamed response into a Result envelope.
type Client struct {
	cfg     *config.Config
	logger  *zap.Logger
	invoker invoker
}

// NewClient resolves AWS credentials for the configured region and
// returns a client bound to the flow named in cfg.
func NewClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Client{
		cfg:     cfg,
		logger:  logger,
		invoker: &sdkInvoker{api: bedrockagentruntime.NewFromConfig(awsCfg)},
	}, nil
}

// Invoke sends the payload to the flow and collects every flow output
// event from the response stream, in arrival order. It never returns
// an error: every failure is folded into a failure envelope.
func (c *Client) Invoke(ctx context.Context, payload InputPayload) Result {
	invocationID := uuid.NewString()
	c.logger.Info("invoking flow",
		zap.String("flow_id", c.cfg.FlowID),
		zap.String("flow_alias_id", c.cfg.FlowAliasID),
		zap.String("invocation_id", invocationID),
	)

	if c.cfg.InvokeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.InvokeTimeout)
		defer cancel()
	}

	in := &bedrockagentruntime.InvokeFlowInput{
		FlowIdentifier:      aws.String(c.cfg.FlowID),
		FlowAliasIdentifier: aws.String(c.cfg.FlowAliasID),
		Inputs: []bedrocktypes.FlowInput{
			{
				Content:        &bedrocktypes.FlowInputContentMemberDocument{Value: document.NewLazyDocument(payload)},
				NodeName:       aws.String(inputNodeName),
				NodeOutputName: aws.String(outputNodeName),
			},
		},
	}

	stream, err := c.invoker.invokeFlow(ctx, in)
	if err != nil {
		return c.failure(invocationID, fmt.Sprintf("invoking flow: %v", err))
	}
	if stream == nil {
		return c.failure(invocationID, errNoResponse)
	}
	defer stream.Close()

	events := []OutputEvent{}
	for raw := range stream.Events() {
		out, ok := raw.(*bedrocktypes.FlowResponseStreamMemberFlowOutputEvent)
		if !ok {
			// Completion and trace events are control signals, not output.
			continue
		}
		ev, err := normalizeOutputEvent(out.Value)
		if err != nil {
			return c.failure(invocationID, err.Error())
		}
		events = append(events, ev)
	}
	if err := stream.Err(); err != nil {
		return c.failure(invocationID, fmt.Sprintf("reading flow response stream: %v", err))
	}

	return success(events)
}

func (c *Client) failure(invocationID, msg string) Result {
	c.logger.Error("flow invocation failed",
		zap.String("flow_id", c.cfg.FlowID),
		zap.String("invocation_id", invocationID),
		zap.String("error", msg),
	)
	return Failure(msg)
}

// normalizeOutputEvent decodes the event's document content into a
// plain JSON value.
func normalizeOutputEvent(ev bedrocktypes.FlowOutputEvent) (OutputEvent, error) {
	out := OutputEvent{
		NodeName: aws.ToString(ev.NodeName),
		NodeType: string(ev.NodeType),
	}

	if doc, ok := ev.Content.(*bedrocktypes.FlowOutputContentMemberDocument); ok && doc.Value != nil {
		var content any
		if err := doc.Value.UnmarshalSmithyDocument(&content); err != nil {
			return OutputEvent{}, fmt.Errorf("decoding flow output document: %w", err)
		}
		out.Content = content
	}

	return out, nil
}
