package base

import (
	"context"
	"sort"

	"github.com/Pocket/global-utils/lib/logger"
	"github.com/Pocket/global-utils/lib/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownOperation when the payload names an operation that does not exist
	ErrUnknownOperation = errors.New("unknown operation")
)

type operation func(src utils.Source, payload *Payload) (any, error)

var operations = map[string]operation{
	"randomElement": func(src utils.Source, p *Payload) (any, error) {
		items, err := utils.ToSequence("items", p.Items)
		if err != nil {
			return nil, err
		}
		return utils.RandomElementWith(src, items)
	},
	"randomInt": func(src utils.Source, p *Payload) (any, error) {
		min, err := utils.ToInt("min", p.Min)
		if err != nil {
			return nil, err
		}
		max, err := utils.ToInt("max", p.Max)
		if err != nil {
			return nil, err
		}
		return utils.RandomIntInRangeWith(src, min, max)
	},
	"shuffle": func(src utils.Source, p *Payload) (any, error) {
		items, err := utils.ToSequence("items", p.Items)
		if err != nil {
			return nil, err
		}
		return utils.ShuffleWith(src, items), nil
	},
	"shuffleString": func(src utils.Source, p *Payload) (any, error) {
		text, err := utils.ToText("text", p.Text)
		if err != nil {
			return nil, err
		}
		return utils.ShuffleStringWith(src, text), nil
	},
	"capitalize": func(_ utils.Source, p *Payload) (any, error) {
		text, err := utils.ToText("text", p.Text)
		if err != nil {
			return nil, err
		}
		return utils.Capitalize(text), nil
	},
	"ellipsify": func(_ utils.Source, p *Payload) (any, error) {
		text, err := utils.ToText("text", p.Text)
		if err != nil {
			return nil, err
		}
		length, err := utils.ToIndex("length", p.Length)
		if err != nil {
			return nil, err
		}
		return utils.Ellipsify(utils.EllipsifyParams{Text: text, Length: length}), nil
	},
	"sort": func(_ utils.Source, p *Payload) (any, error) {
		items, err := utils.ToSequence("items", p.Items)
		if err != nil {
			return nil, err
		}
		numbers := make([]float64, len(items))
		for i, item := range items {
			if numbers[i], err = utils.ToFloat("items", item); err != nil {
				return nil, err
			}
		}
		return utils.Quicksort(numbers), nil
	},
	"unique": func(_ utils.Source, p *Payload) (any, error) {
		items, err := utils.ToSequence("items", p.Items)
		if err != nil {
			return nil, err
		}
		return utils.UniqueValues(items), nil
	},
	"chunk": func(_ utils.Source, p *Payload) (any, error) {
		items, err := utils.ToSequence("items", p.Items)
		if err != nil {
			return nil, err
		}
		size, err := utils.ToFloat("size", p.Size)
		if err != nil {
			return nil, err
		}
		return utils.ChunkFloat(items, size)
	},
	"flatten": func(_ utils.Source, p *Payload) (any, error) {
		items, err := utils.ToSequence("items", p.Items)
		if err != nil {
			return nil, err
		}
		return utils.Flatten(items), nil
	},
	"compact": func(_ utils.Source, p *Payload) (any, error) {
		items, err := utils.ToSequence("items", p.Items)
		if err != nil {
			return nil, err
		}
		return utils.Compact(items), nil
	},
	"intersection": func(_ utils.Source, p *Payload) (any, error) {
		a, b, err := sequencePair(p)
		if err != nil {
			return nil, err
		}
		return utils.IntersectionValues(a, b), nil
	},
	"difference": func(_ utils.Source, p *Payload) (any, error) {
		a, b, err := sequencePair(p)
		if err != nil {
			return nil, err
		}
		return utils.DifferenceValues(a, b), nil
	},
	"isObject": func(_ utils.Source, p *Payload) (any, error) {
		return utils.IsPlainMapping(p.Items), nil
	},
}

func sequencePair(p *Payload) ([]any, []any, error) {
	a, err := utils.ToSequence("items", p.Items)
	if err != nil {
		return nil, nil, err
	}
	b, err := utils.ToSequence("other", p.Other)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Operations returns the sorted names of the supported operations
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the operation named by the payload drawing randomness from src
func Apply(src utils.Source, payload *Payload) (any, error) {
	op, ok := operations[payload.Operation]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperation, "%q", payload.Operation)
	}

	result, err := op(src, payload)
	if err != nil {
		return nil, errors.Wrap(err, payload.Operation)
	}
	return result, nil
}

// ApplyBatch applies every payload concurrently, at most concurrency at a time.
// A failing payload is reported in its own response and does not stop the
// rest, only a cancelled context does.
func ApplyBatch(ctx context.Context, payloads []Payload, concurrency int) ([]Response, error) {
	responses := make([]Response, len(payloads))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for idx := range payloads {
		idx := idx
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			payload := &payloads[idx]
			result, err := Apply(utils.DefaultSource, payload)
			responses[idx] = Response{
				Operation: payload.Operation,
				Result:    result,
			}
			if err != nil {
				responses[idx].Error = err.Error()
				logger.Log.WithFields(log.Fields{
					"requestID": payload.RequestID,
					"operation": payload.Operation,
					"index":     idx,
					"error":     err.Error(),
				}).Warn("apply utility: payload failed")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "error applying payload batch")
	}
	return responses, nil
}
