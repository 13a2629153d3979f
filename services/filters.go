package services

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/models"
)

// SearchTarget selects the field a keyword search matches against.
type SearchTarget string

const (
	TargetAuthor SearchTarget = "author"
	TargetTitle  SearchTarget = "title"
	TargetTags   SearchTarget = "tags"
)

func errInvalidSearch() *Error { return badRequest(MsgInvalidSearch, nil) }

// ValidPublicTarget reports whether target may be used on the public search.
func ValidPublicTarget(target SearchTarget) bool {
	return target == TargetAuthor || target == TargetTitle || target == TargetTags
}

// ValidOwnTarget reports whether target may be used when authors search their own blogs.
func ValidOwnTarget(target SearchTarget) bool {
	return target == TargetTitle || target == TargetTags
}

// keywordRegex matches keyword as a literal, case-insensitive substring.
// An empty keyword matches everything.
func keywordRegex(keyword string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
}

// PublishedFilter selects every published blog.
func PublishedFilter() bson.M {
	return bson.M{"state": models.StatePublished}
}

// AuthorFilter selects the caller's blogs, optionally narrowed to one state.
func AuthorFilter(caller primitive.ObjectID, state string) (bson.M, error) {
	filter := bson.M{"author": caller}
	if state == "" {
		return filter, nil
	}
	if !models.BlogState(state).Valid() {
		return nil, badRequest(MsgInvalidState, nil)
	}
	filter["state"] = models.BlogState(state)
	return filter, nil
}

// NameFilter matches users whose first or last name contains keyword.
func NameFilter(keyword string) bson.M {
	re := keywordRegex(keyword)
	return bson.M{"$or": []bson.M{
		{"first_name": re},
		{"last_name": re},
	}}
}

// PublicSearchFilter builds the published-blog search predicate. For
// TargetAuthor the caller resolves authorIDs beforehand.
func PublicSearchFilter(target SearchTarget, keyword string, authorIDs []primitive.ObjectID) (bson.M, error) {
	filter := PublishedFilter()
	switch target {
	case TargetAuthor:
		filter["author"] = bson.M{"$in": authorIDs}
	case TargetTitle, TargetTags:
		matchField(filter, target, keyword)
	default:
		return nil, errInvalidSearch()
	}
	return filter, nil
}

// OwnSearchFilter builds the search predicate over the caller's own blogs.
func OwnSearchFilter(caller primitive.ObjectID, target SearchTarget, keyword string) (bson.M, error) {
	if !ValidOwnTarget(target) {
		return nil, errInvalidSearch()
	}
	filter := bson.M{"author": caller}
	matchField(filter, target, keyword)
	return filter, nil
}

func matchField(filter bson.M, target SearchTarget, keyword string) {
	re := keywordRegex(keyword)
	if target == TargetTags {
		filter["tags"] = bson.M{"$elemMatch": bson.M{"$regex": re}}
		return
	}
	filter[string(target)] = re
}
