package tally

import "context"

type ChangePublisher = func(ctx context.Context, options PublishOptions, deltas ...Delta) (Snapshot, error)

type PublishOptions struct {
	ChangeMetadata
	ExpectedRevision Revision
}

type PublishOption func(options *PublishOptions)

func Options(options ...PublishOption) PublishOptions {
	modifiers := &PublishOptions{}
	for _, option := range options {
		option(modifiers)
	}

	return *modifiers
}

func WithExpectedRevision(expected Revision) PublishOption {
	return func(options *PublishOptions) {
		options.ExpectedRevision = expected
	}
}

func WithCorrelationId(correlationId CorrelationID) PublishOption {
	return func(options *PublishOptions) {
		options.ChangeMetadata.CorrelationId = correlationId
	}
}

func WithCausationId(correlationId CorrelationID, causationId ChangeID) PublishOption {
	return func(options *PublishOptions) {
		options.ChangeMetadata.CorrelationId = correlationId
		options.ChangeMetadata.CausationId = causationId
	}
}
