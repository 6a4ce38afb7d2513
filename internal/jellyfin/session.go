package jellyfin

import (
	"context"
	"fmt"
	"time"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// Playstate requests run from the playback path and must not hang it.
const reportTimeout = 10 * time.Second

// TicksPerSecond converts seconds to Jellyfin position ticks.
const TicksPerSecond = 10_000_000

// ReportPlaybackStart notifies the server that playback has started.
func (c *Client) ReportPlaybackStart(itemID string, positionTicks int64) error {
	body := *jellyfin.NewPlaybackStartInfo()
	body.SetItemId(itemID)
	body.SetPositionTicks(positionTicks)
	body.SetCanSeek(true)
	body.SetPlayMethod(jellyfin.PLAYMETHOD_DIRECT_PLAY)

	ctx, cancel := context.WithTimeout(c.ctx, reportTimeout)
	defer cancel()
	_, err := c.api.PlaystateAPI.ReportPlaybackStart(ctx).PlaybackStartInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report playback start: %w", err)
	}
	return nil
}

// ReportPlaybackProgress sends a progress update to the server.
func (c *Client) ReportPlaybackProgress(itemID string, positionTicks int64, isPaused bool) error {
	body := *jellyfin.NewPlaybackProgressInfo()
	body.SetItemId(itemID)
	body.SetPositionTicks(positionTicks)
	body.SetIsPaused(isPaused)
	body.SetCanSeek(true)
	body.SetPlayMethod(jellyfin.PLAYMETHOD_DIRECT_PLAY)

	ctx, cancel := context.WithTimeout(c.ctx, reportTimeout)
	defer cancel()
	_, err := c.api.PlaystateAPI.ReportPlaybackProgress(ctx).PlaybackProgressInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report progress: %w", err)
	}
	return nil
}

// ReportPlaybackStopped notifies the server that playback has stopped.
func (c *Client) ReportPlaybackStopped(itemID string, positionTicks int64) error {
	body := *jellyfin.NewPlaybackStopInfo()
	body.SetItemId(itemID)
	body.SetPositionTicks(positionTicks)

	ctx, cancel := context.WithTimeout(c.ctx, reportTimeout)
	defer cancel()
	_, err := c.api.PlaystateAPI.ReportPlaybackStopped(ctx).PlaybackStopInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report playback stopped: %w", err)
	}
	return nil
}
