package models

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

type TransactionMethod string

const (
	TransactionMethodManually TransactionMethod = "manually"
	TransactionMethodReader   TransactionMethod = "reader"
	TransactionMethodCash     TransactionMethod = "cash"
)

type ReaderStatus string

const (
	ReaderStatusOnline  ReaderStatus = "online"
	ReaderStatusOffline ReaderStatus = "offline"
)
