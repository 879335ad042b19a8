package storage

import "errors"

var ErrItemNotFound = errors.New("item not found in storage")
var ErrItemWithIDAlreadyExists = errors.New("item with this id already exists")
var ErrUnprocessedKeys = errors.New("batch get gave up on unprocessed keys")
