package reward

import (
	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
)

// Classifier maps NPC type ids onto reward classes
type Classifier struct {
	classes map[int]domain.NPCClass
}

// NewClassifier builds a classifier from the configured id sets.
// An id listed in several sets takes the highest class.
func NewClassifier(sets config.NPCSets) *Classifier {
	c := &Classifier{classes: make(map[int]domain.NPCClass)}
	// lowest first so later sets win
	c.add(sets.Hostile, domain.NPCHostile)
	c.add(sets.Special, domain.NPCSpecial)
	c.add(sets.Boss1, domain.NPCBoss1)
	c.add(sets.Boss2, domain.NPCBoss2)
	c.add(sets.Boss3, domain.NPCBoss3)
	return c
}

func (c *Classifier) add(ids []int, class domain.NPCClass) {
	for _, id := range ids {
		c.classes[id] = class
	}
}

// Classify returns the class of npcID, normal when it is in no set
func (c *Classifier) Classify(npcID int) domain.NPCClass {
	if class, ok := c.classes[npcID]; ok {
		return class
	}
	return domain.NPCNormal
}

// TierFor returns the configured odds of class
func TierFor(cfg config.RewardsConfig, class domain.NPCClass) Tier {
	switch class {
	case domain.NPCHostile:
		return Tier{Rate: cfg.Rates.Hostile, MaxAmount: cfg.MaxAmounts.Hostile}
	case domain.NPCSpecial:
		return Tier{Rate: cfg.Rates.Special, MaxAmount: cfg.MaxAmounts.Special}
	case domain.NPCBoss1:
		return Tier{Rate: cfg.Rates.Boss1, MaxAmount: cfg.MaxAmounts.Boss1}
	case domain.NPCBoss2:
		return Tier{Rate: cfg.Rates.Boss2, MaxAmount: cfg.MaxAmounts.Boss2}
	case domain.NPCBoss3:
		return Tier{Rate: cfg.Rates.Boss3, MaxAmount: cfg.MaxAmounts.Boss3}
	default:
		return Tier{Rate: cfg.Rates.Normal, MaxAmount: cfg.MaxAmounts.Normal}
	}
}
