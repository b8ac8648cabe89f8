package respond

import "daily-news/internal/repository"

// InsertResult is the body returned by create endpoints.
// InsertedID is null when nothing was inserted.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged" example:"true"`
	InsertedID   *string `json:"insertedId" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
}

// UpdateResult is the body returned by update endpoints.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged" example:"true"`
	MatchedCount  int64   `json:"matchedCount" example:"1"`
	ModifiedCount int64   `json:"modifiedCount" example:"1"`
	UpsertedID    *string `json:"upsertedId"`
	UpsertedCount int64   `json:"upsertedCount" example:"0"`
}

// DeleteResult is the body returned by delete endpoints.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged" example:"true"`
	DeletedCount int64 `json:"deletedCount" example:"1"`
}

// Inserted wraps a newly assigned id.
func Inserted(id string) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: &id}
}

// Updated converts a repository update result.
func Updated(res repository.UpdateResult) UpdateResult {
	out := UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.Matched,
		ModifiedCount: res.Modified,
	}
	if res.UpsertedID != "" {
		id := res.UpsertedID
		out.UpsertedID = &id
		out.UpsertedCount = 1
	}
	return out
}

// Deleted converts a repository delete result.
func Deleted(res repository.DeleteResult) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: res.Deleted}
}
