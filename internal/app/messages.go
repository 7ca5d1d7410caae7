package app

import (
	"stagehand/internal/banner"
	"stagehand/internal/live"
)

type liveReplyMsg struct {
	seq     int
	query   string
	payload *live.Payload
}

type pacingDoneMsg struct {
	gen int
}

type progressTickMsg struct{}

type bannersMsg struct {
	banners []banner.Banner
	err     error
}

type bannerDismissedMsg struct {
	id  string
	err error
}
