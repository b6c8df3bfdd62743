package model

// TargetKind is the closed registry of entity kinds a tag or like can point
// at. A (kind, id) pair replaces an open-ended runtime type lookup.
type TargetKind string

const (
	KindProduct    TargetKind = "product"
	KindCollection TargetKind = "collection"
	KindCustomer   TargetKind = "customer"
	KindOrder      TargetKind = "order"
)

var targetKinds = map[TargetKind]struct{}{
	KindProduct:    {},
	KindCollection: {},
	KindCustomer:   {},
	KindOrder:      {},
}

func KnownTargetKind(k TargetKind) bool {
	_, ok := targetKinds[k]
	return ok
}

type Tag struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"size:255;uniqueIndex;not null"`
}

// TaggedItem binds a tag to a (kind, id) pair. No foreign key crosses into
// the target table; the kind registry is the only type check.
type TaggedItem struct {
	ID         uint       `gorm:"primaryKey"`
	TagID      uint       `gorm:"uniqueIndex:idx_tagged_items_target;not null"`
	TargetKind TargetKind `gorm:"size:32;uniqueIndex:idx_tagged_items_target;not null"`
	TargetID   uint       `gorm:"uniqueIndex:idx_tagged_items_target;not null"`

	Tag Tag
}

type LikedItem struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     string     `gorm:"size:64;uniqueIndex:idx_liked_items_user_target;not null"`
	TargetKind TargetKind `gorm:"size:32;uniqueIndex:idx_liked_items_user_target;not null"`
	TargetID   uint       `gorm:"uniqueIndex:idx_liked_items_user_target;not null"`
}
