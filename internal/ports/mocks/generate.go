//go:generate mockgen -source=../storage.go          -destination=./mock_storage.go          -package=mocks
//go:generate mockgen -source=../cart_store.go       -destination=./mock_cart_store.go       -package=mocks
//go:generate mockgen -source=../cart_service.go     -destination=./mock_cart_service.go     -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks

package mocks
