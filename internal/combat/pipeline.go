// Package combat holds the entity health model and the damage pipeline.
//
// All health mutation goes through Deal: attacker damage reaches the target's
// TakeDamage, which runs the defender's optional Mitigation hook before
// subtracting. Attackers never see defender stats.
package combat

//go:generate go tool mockgen -destination=./mocks/combat_mock.go -package=mocks . Damageable,DropTable,Releaser

// Killed is returned by TakeDamage on the call that resolves death.
const Killed = -1.0

// Damageable is the sink of the damage pipeline.
type Damageable interface {
	TakeDamage(amount float64) float64
}

// DropTable is invoked exactly once at death, before the entity is parked.
type DropTable interface {
	DropCommons()
}

// Mitigation transforms incoming damage before it is applied.
type Mitigation func(amount float64) float64

// Chain composes hooks left to right. Nil hooks are skipped; an empty chain
// returns nil so callers can keep treating "no hook" as absent.
func Chain(hooks ...Mitigation) Mitigation {
	var hs []Mitigation
	for _, h := range hooks {
		if h != nil {
			hs = append(hs, h)
		}
	}
	switch len(hs) {
	case 0:
		return nil
	case 1:
		return hs[0]
	}
	return func(amount float64) float64 {
		for _, h := range hs {
			amount = h(amount)
		}
		return amount
	}
}

// Scale returns a multiplicative hook.
func Scale(factor float64) Mitigation {
	return func(amount float64) float64 { return amount * factor }
}

// Deal routes amount to target. A nil target absorbs nothing and returns 0.
func Deal(amount float64, target Damageable) float64 {
	if target == nil {
		return 0
	}
	return target.TakeDamage(amount)
}
