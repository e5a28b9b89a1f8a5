package mongodb

import (
	"shopapi/domain/listing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// operatorKeys maps descriptor operators to their BSON query form.
var operatorKeys = map[listing.Op]string{
	listing.OpGt:  "$gt",
	listing.OpGte: "$gte",
	listing.OpLt:  "$lt",
	listing.OpLte: "$lte",
}

// TranslateDescriptor converts a listing descriptor into a BSON filter and
// find options. Search and filter conditions combine as a logical AND inside
// one filter document; the pager becomes skip/limit options.
func TranslateDescriptor(d *listing.Descriptor) (bson.M, *options.FindOptions) {
	filter := bson.M{}

	if d.Search != "" {
		// Case-insensitive substring match. The pattern is the literal
		// client value; metacharacters are not escaped.
		filter["name"] = primitive.Regex{Pattern: d.Search, Options: "i"}
	}

	for field, conds := range d.Filters {
		filter[field] = translateConditions(conds)
	}

	opts := options.Find().
		SetLimit(int64(d.Pager.Limit)).
		SetSkip(int64(d.Pager.Skip))

	return filter, opts
}

func translateConditions(conds []listing.Condition) interface{} {
	if len(conds) == 1 && conds[0].Op == listing.OpEq {
		return conds[0].Value
	}

	doc := bson.M{}
	for _, c := range conds {
		if c.Op == listing.OpEq {
			doc["$eq"] = c.Value
			continue
		}
		doc[operatorKeys[c.Op]] = c.Value
	}
	return doc
}
