package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"realestate_api/internal/domain"
)

// searchFilter translates the optional constraints into one bson document.
// The identical document feeds both the page fetch and the count, so the two
// always agree on which records match.
//
// name and address are case-insensitive substring matches; the user value is
// quoted so regex metacharacters are matched literally. Empty strings and
// nil prices add no constraint; no constraint at all yields the match-all
// document.
func searchFilter(f domain.PropertyFilter) bson.M {
	var clauses []bson.M
	if f.Name != nil && *f.Name != "" {
		clauses = append(clauses, bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(*f.Name), Options: "i"}})
	}
	if f.Address != nil && *f.Address != "" {
		clauses = append(clauses, bson.M{"address": primitive.Regex{Pattern: regexp.QuoteMeta(*f.Address), Options: "i"}})
	}
	if f.OwnerID != nil && *f.OwnerID != "" {
		clauses = append(clauses, bson.M{"idOwner": *f.OwnerID})
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		clauses = append(clauses, bson.M{"price": price})
	}
	if len(clauses) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": clauses}
}
