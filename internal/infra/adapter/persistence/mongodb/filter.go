package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"daily-news/internal/repository"
)

// articleFilterDoc translates an ArticleFilter into a MongoDB query document.
// Title text is matched literally: regex metacharacters in user input are quoted.
func articleFilterDoc(f repository.ArticleFilter) bson.D {
	filter := bson.D{}
	if f.Status != nil {
		filter = append(filter, bson.E{Key: "status", Value: string(*f.Status)})
	}
	if f.AuthorEmail != nil {
		filter = append(filter, bson.E{Key: "authorEmail", Value: *f.AuthorEmail})
	}
	if f.TitleContains != nil {
		filter = append(filter, bson.E{Key: "title", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(*f.TitleContains),
			Options: "i",
		}})
	}
	if f.Publisher != nil {
		filter = append(filter, bson.E{Key: "publisher", Value: *f.Publisher})
	}
	if len(f.AnyTags) > 0 {
		filter = append(filter, bson.E{Key: "tags", Value: bson.D{{Key: "$in", Value: f.AnyTags}}})
	}
	return filter
}
