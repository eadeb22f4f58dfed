package services

import "go.mongodb.org/mongo-driver/mongo/options"

// DocumentBSONOptions makes nested documents decode as maps, so stored
// documents render as JSON objects instead of key/value arrays.
func DocumentBSONOptions() *options.BSONOptions {
	return &options.BSONOptions{DefaultDocumentM: true}
}
