package view

import "time"

type StatusBar struct {
	Clock   string
	Wifi    bool
	Battery bool
}

func NewStatusBar(now time.Time) StatusBar {
	return StatusBar{Clock: now.Format("15:04"), Wifi: true, Battery: true}
}
