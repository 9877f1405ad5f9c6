package domain

import "time"

// DefaultGroupName is the group every new source is filed under.
const DefaultGroupName = "默认"

// SourceItem is a subscribed content producer on a named platform.
// Items are immutable once created.
type SourceItem struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	Nickname  string `json:"nickname"`
	Homepage  string `json:"homepage"`
	Pinned    bool   `json:"pinned"`
	GroupName string `json:"groupName"`
	CreatedAt string `json:"createdAt"`
}

// SourceCandidate is a nickname/homepage pair proposed for import,
// either typed by the user or recognised from a screenshot.
type SourceCandidate struct {
	Nickname string `json:"nickname" validate:"notblank"`
	Homepage string `json:"homepage" validate:"notblank"`
}

// NewSourceItem creates an unpinned SourceItem in the default group.
func NewSourceItem(platform, nickname, homepage string, now time.Time) SourceItem {
	return SourceItem{
		ID:        NewID(),
		Platform:  platform,
		Nickname:  nickname,
		Homepage:  homepage,
		Pinned:    false,
		GroupName: DefaultGroupName,
		CreatedAt: FormatTimestamp(now),
	}
}
