package locomotion

// SprintEligible returns true if the actor may start or keep sprinting.
func (c *Controller) SprintEligible() bool {
	return !c.s.Exhausted && c.s.Stamina > 0 && !c.s.CrouchActual
}

// Stamina returns the current stamina.
func (c *Controller) Stamina() float32 {
	return c.s.Stamina
}

// StaminaPercentage returns the stamina as a fraction of MaxStamina.
func (c *Controller) StaminaPercentage() float32 {
	if c.params.MaxStamina <= 0 {
		return 0
	}
	return c.s.Stamina / c.params.MaxStamina
}

// Exhausted returns true while sprinting is locked out after stamina ran out.
func (c *Controller) Exhausted() bool {
	return c.s.Exhausted
}

// ExhaustionRemaining returns the seconds left until exhaustion ends.
func (c *Controller) ExhaustionRemaining() float64 {
	if !c.s.Exhausted {
		return 0
	}
	return max(0, c.s.ExhaustionEndTime-c.s.Now)
}

// RestoreStamina adds amount to the stamina. It does not end exhaustion.
func (c *Controller) RestoreStamina(amount float32) {
	if !(amount > 0) || !finite(amount) {
		return
	}
	c.s.Stamina = min(c.params.MaxStamina, c.s.Stamina+amount)
}

// expireExhaustion ends exhaustion once its timer ran out. Regenerated stamina
// never ends it early.
func (ctx *stepContext) expireExhaustion() {
	s := &ctx.c.s
	if s.Exhausted && s.Now >= s.ExhaustionEndTime {
		s.Exhausted = false
		ctx.debugf("stamina: exhaustion over with %.1f stamina", s.Stamina)
	}
}

func (ctx *stepContext) updateStamina() {
	s, p := &ctx.c.s, ctx.c.params
	s.Sprinting = ctx.sprinting

	switch {
	case s.Sprinting:
		s.Stamina -= p.StaminaDrain * ctx.dt
		if s.Stamina <= 0 {
			s.Stamina = 0
			s.Exhausted = true
			s.ExhaustionEndTime = s.Now + p.ExhaustionCooldown
			ctx.debugf("stamina: exhausted until %.2f", s.ExhaustionEndTime)
		}
	case !s.Exhausted:
		s.Stamina = min(p.MaxStamina, s.Stamina+p.StaminaRegen*ctx.dt)
	}
}
