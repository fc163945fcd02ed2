package hexclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

const logsBufferSize = 128

func (c *HexClient) SubscribeStakeEvents(
	ctx context.Context, owners []common.Address, sink chan<- *types.StakeEvent,
) error {
	if c.logs == nil {
		return ErrEventsDisabled
	}

	query := c.stakeEventsQuery(owners)
	logs := make(chan ethtypes.Log, logsBufferSize)
	sub, err := c.logs.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to stake events: %w", err)
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-sub.Err():
			return fmt.Errorf("stake events subscription failed: %w", err)
		case l := <-logs:
			// logs of reorged blocks are replayed once the new chain arrives
			if l.Removed {
				continue
			}

			ev, err := c.parseStakeEvent(l)
			if err != nil {
				log.Ctx(ctx).Error().Err(err).
					Str("tx", l.TxHash.Hex()).
					Uint("index", l.Index).
					Msg("failed to parse stake event")
				continue
			}

			select {
			case sink <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (c *HexClient) stakeEventsQuery(owners []common.Address) ethereum.FilterQuery {
	topics := [][]common.Hash{{
		c.abi.Events[types.EventStakeStart.String()].ID,
		c.abi.Events[types.EventStakeEnd.String()].ID,
	}}
	if len(owners) > 0 {
		ownerTopics := make([]common.Hash, 0, len(owners))
		for _, o := range owners {
			ownerTopics = append(ownerTopics, common.BytesToHash(o.Bytes()))
		}
		topics = append(topics, ownerTopics)
	}

	return ethereum.FilterQuery{
		Addresses: []common.Address{c.contract},
		Topics:    topics,
	}
}

func (c *HexClient) parseStakeEvent(l ethtypes.Log) (*types.StakeEvent, error) {
	if len(l.Topics) != 3 {
		return nil, fmt.Errorf("expected 3 topics, got %d", len(l.Topics))
	}

	staker := common.BytesToAddress(l.Topics[1].Bytes()).Hex()
	stakeID, err := codec.ToUint64("stakeId", new(big.Int).SetBytes(l.Topics[2].Bytes()))
	if err != nil {
		return nil, err
	}

	ev := &types.StakeEvent{
		BlockNumber: l.BlockNumber,
		TxHash:      l.TxHash.Hex(),
	}

	switch l.Topics[0] {
	case c.abi.Events[types.EventStakeStart.String()].ID:
		data, err := c.unpackEventData(types.EventStakeStart, l.Data, 1)
		if err != nil {
			return nil, err
		}
		start, err := codec.DecodeStakeStart(data[0])
		if err != nil {
			return nil, err
		}
		start.StakerAddr = staker
		start.StakeID = stakeID

		ev.Type = types.EventStakeStart
		ev.Start = start
	case c.abi.Events[types.EventStakeEnd.String()].ID:
		data, err := c.unpackEventData(types.EventStakeEnd, l.Data, 2)
		if err != nil {
			return nil, err
		}
		end, err := codec.DecodeStakeEnd(data[0], data[1])
		if err != nil {
			return nil, err
		}
		end.StakerAddr = staker
		end.StakeID = stakeID

		ev.Type = types.EventStakeEnd
		ev.End = end
	default:
		return nil, fmt.Errorf("unknown event topic %s", l.Topics[0].Hex())
	}

	return ev, nil
}

func (c *HexClient) unpackEventData(event types.EventTypes, data []byte, words int) ([]*big.Int, error) {
	values, err := c.abi.Unpack(event.String(), data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", event, err)
	}
	if len(values) != words {
		return nil, fmt.Errorf("expected %d data words in %s, got %d", words, event, len(values))
	}

	out := make([]*big.Int, 0, words)
	for i, v := range values {
		n, err := asBigInt(fmt.Sprintf("%s.data%d", event, i), v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
