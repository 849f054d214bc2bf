package core

import "time"

type RelayConfig interface {
	GetOperatorID() int64
	GetServiceName() string
	GetHistorySize() int
	GetMaxFileSize() int64
	GetLocation() *time.Location
}

type MenuConfig interface {
	GetSiteURL() string
	GetContacts() string
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetOperatorID() int64
}
