package schema

const (
	BadgeCollection = "badges"
)

// BadgeTier is the badge rarity ladder.
type BadgeTier string

const (
	BadgeTierBronze   BadgeTier = "bronze"
	BadgeTierSilver   BadgeTier = "silver"
	BadgeTierGold     BadgeTier = "gold"
	BadgeTierPlatinum BadgeTier = "platinum"
)

// BadgeTierColors maps a tier to its display color.
var BadgeTierColors = map[BadgeTier]string{
	BadgeTierBronze:   "#CD7F32",
	BadgeTierSilver:   "#C0C0C0",
	BadgeTierGold:     "#FFD700",
	BadgeTierPlatinum: "#E5E4E2",
}

// Badge is a gamification badge definition.
type Badge struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Tier        BadgeTier `bson:"tier" json:"tier"`
	Category    string    `bson:"category" json:"category"`
	XPReward    int64     `bson:"xp_reward" json:"xp_reward"`

	// RequiredConnections gates connection-count badges; RequiresVerified
	// gates the identity badge. Zero values mean the rule does not apply.
	RequiredConnections int64 `bson:"required_connections,omitempty" json:"required_connections,omitempty"`
	RequiresVerified    bool  `bson:"requires_verified,omitempty" json:"requires_verified,omitempty"`
}
