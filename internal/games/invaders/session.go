package invaders

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// exitRequest asks the host to leave the game entirely.
type exitRequest struct {
	from Phase
}

// closeRequest asks to close the pause menu and resume play.
type closeRequest struct{}

// TickResult reports what happened during one Session.Tick.
type TickResult struct {
	Phase       Phase
	Transitions []Transition // includes changes made by EnterGame since the last tick
	Move        MoveKind
	Kills       int
	ShotsFired  int // paddle shots
	SwarmShots  int
	Stale       int // collision candidates or requests skipped as already resolved
	Exit        bool
}

// Entered reports whether the tick moved the session into phase p.
func (r TickResult) Entered(p Phase) bool {
	for _, t := range r.Transitions {
		if t.To == p {
			return true
		}
	}
	return false
}

// Session is one player's game: the swarm, the paddle, the projectiles,
// score, clock and phase, advanced together by Tick in a fixed order.
type Session struct {
	cfg    config.InvadersConfig
	rng    *rand.Rand
	logger *log.Logger

	state  StateMachine
	clock  PlayClock
	score  ScoreTracker
	swarm  *Swarm
	paddle *Paddle

	projectiles []Projectile

	// Per-tick message lists, drained inside Tick.
	shootRequests []ShootRequest
	closeRequests []closeRequest
	exitRequests  []exitRequest

	transitions []Transition
	resetInput  bool // set on entering Playing, consumed by the next Playing tick
	struck      bool // paddle hit during the current collision pass
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand injects the random source used for swarm fire decisions.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// NewSession creates an idle session. Without options it logs nowhere and
// uses a random source seeded with 1.
func NewSession(cfg config.InvadersConfig, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(1)), //#nosec G404 -- gameplay randomness
		logger: log.New(io.Discard),
		score:  NewScoreTracker(cfg.Scoring),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.Phase()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score.Value()
}

// PlayTime returns the seconds of active play in this run.
func (s *Session) PlayTime() float64 {
	return s.clock.Now()
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.InvadersConfig {
	return s.cfg
}

// EnterGame starts a run from Idle: Idle -> Starting -> Playing.
// Calling it in any other phase does nothing.
func (s *Session) EnterGame() {
	if !s.fire(TriggerEnterGame) {
		return
	}
	s.start()
}

// RequestExit queues an exit request, handled on the next tick if the
// session is showing a menu.
func (s *Session) RequestExit() {
	s.exitRequests = append(s.exitRequests, exitRequest{from: s.Phase()})
}

// ClearSwarm destroys every live target without awarding score.
// The win is detected on the next Playing tick.
func (s *Session) ClearSwarm() int {
	if s.Phase() != PhasePlaying {
		return 0
	}
	n := s.swarm.KillAll()
	s.logger.Debug("swarm cleared", "targets", n)
	return n
}

// start resets the run and enters Playing. Phase must be Starting.
func (s *Session) start() {
	s.score.Reset()
	s.clock.Reset()
	s.swarm = SpawnSwarm(s.cfg.Swarm, s.cfg.Field.HalfWidth)
	s.paddle = NewPaddle(s.cfg.Paddle)
	s.projectiles = s.projectiles[:0]
	s.shootRequests = s.shootRequests[:0]
	s.closeRequests = s.closeRequests[:0]
	s.struck = false

	if s.fire(TriggerStarted) {
		s.resetInput = true
	}
	s.logger.Debug("run started", "targets", s.swarm.Live(), "preset", s.cfg.Difficulty.Preset)
}

// teardown discards every run-scoped entity.
func (s *Session) teardown() {
	s.swarm = nil
	s.paddle = nil
	s.projectiles = nil
	s.shootRequests = nil
	s.closeRequests = nil
	s.struck = false
}

func (s *Session) fire(t Trigger) bool {
	tr, ok := s.state.Fire(t)
	if !ok {
		return false
	}
	s.transitions = append(s.transitions, tr)
	s.logger.Debug("phase changed", "from", tr.From, "to", tr.To, "trigger", tr.Trigger)
	return true
}

// Tick advances the session by dt seconds of wall time.
func (s *Session) Tick(dt float64, in core.Input) TickResult {
	var res TickResult
	if in == nil {
		in = &core.InputFrame{}
	}

	switch s.Phase() {
	case PhasePlaying:
		s.tickPlaying(dt, in, &res)
	case PhasePaused, PhaseWon, PhaseLost:
		s.tickMenu(in, &res)
	}

	res.Phase = s.Phase()
	res.Transitions = s.transitions
	s.transitions = nil
	return res
}

// tickMenu handles the overlay shown while paused or after a run.
func (s *Session) tickMenu(in core.Input, res *TickResult) {
	phase := s.Phase()

	if in.JustPressed(core.ActionQuit) {
		s.exitRequests = append(s.exitRequests, exitRequest{from: phase})
	}
	if phase == PhasePaused && (in.JustPressed(core.ActionPause) || in.JustPressed(core.ActionConfirm)) {
		s.closeRequests = append(s.closeRequests, closeRequest{})
	}

	// Exit wins over anything else queued this tick.
	if len(s.exitRequests) > 0 {
		s.logger.Debug("exit requested", "from", s.exitRequests[0].from)
		s.exitRequests = s.exitRequests[:0]
		s.closeRequests = s.closeRequests[:0]
		if s.fire(TriggerQuit) {
			s.teardown()
			res.Exit = true
		}
		return
	}

	if phase.Finished() {
		if in.JustPressed(core.ActionRestart) || in.JustPressed(core.ActionConfirm) {
			if s.fire(TriggerRestart) {
				s.start()
			}
		}
		return
	}

	if len(s.closeRequests) > 0 {
		s.closeRequests = s.closeRequests[:0]
		if s.fire(TriggerResume) {
			s.resetInput = true
		}
	}
}

// tickPlaying runs one frame of play in the fixed order:
// input, paddle, clock, swarm, projectile spawn and motion, collisions,
// retirement, then score decay and the win/lose evaluation.
func (s *Session) tickPlaying(dt float64, in core.Input, res *TickResult) {
	// Exit requests only apply to menus.
	s.exitRequests = s.exitRequests[:0]

	if s.resetInput {
		in.Reset()
		s.resetInput = false
	}

	if in.JustPressed(core.ActionPause) {
		s.fire(TriggerPause)
		return
	}

	// A swarm emptied since the last evaluation wins before anything moves.
	if s.swarm.Empty() {
		s.fire(TriggerSwarmCleared)
		return
	}

	// Paddle
	s.paddle.ApplyInput(in)
	s.paddle.Integrate(dt, s.cfg.Field.HalfWidth)
	if in.Held(core.ActionShoot) && s.paddle.TryShoot(s.clock.Now()) {
		pos := s.paddle.Pos()
		s.shootRequests = append(s.shootRequests, ShootRequest{
			Owner:    OwnerPaddle,
			Origin:   core.Vec2{X: pos.X, Y: pos.Y + s.cfg.Projectiles.PaddleOffset},
			Velocity: core.Vec2{Y: s.cfg.Projectiles.PaddleSpeed},
		})
		s.score.ShotFired()
		res.ShotsFired++
	}

	s.clock.Advance(dt)
	now := s.clock.Now()

	// Swarm
	res.Move = s.swarm.Move(now)
	s.swarmShoot(now)

	// Projectiles
	res.SwarmShots = s.spawnProjectiles(res)
	advanceProjectiles(s.projectiles, dt)
	s.resolveCollisions(res)
	s.projectiles, _ = retireProjectiles(s.projectiles, s.cfg.Field.HalfWidth, s.cfg.Field.HalfHeight)

	// Score and outcome
	s.score.Decay(now)
	s.evaluate()
}

// swarmShoot decides whether the swarm fires this frame.
func (s *Session) swarmShoot(now float64) {
	threshold := s.cfg.Pacing.ShootThreshold(now)
	if !s.swarm.ShootDue(now, threshold) {
		return
	}
	if s.rng.Float64() >= s.cfg.Swarm.FireChance {
		return
	}
	id, ok := s.swarm.PickShooter(s.paddle.Pos().X, s.rng)
	if !ok {
		return
	}
	s.shootRequests = append(s.shootRequests, ShootRequest{
		Owner:    OwnerSwarm,
		Velocity: core.Vec2{Y: -s.cfg.Projectiles.SwarmSpeed},
		Source:   id,
	})
}

// spawnProjectiles drains the shoot requests. A swarm request whose shooter
// died before the drain is stale and dropped. Returns the swarm shots spawned.
func (s *Session) spawnProjectiles(res *TickResult) int {
	swarmShots := 0
	for _, req := range s.shootRequests {
		origin := req.Origin
		if req.Owner == OwnerSwarm {
			muzzle, ok := s.swarm.Muzzle(req.Source)
			if !ok {
				s.logger.Debug("stale shoot request skipped", "target", req.Source)
				res.Stale++
				continue
			}
			origin = muzzle
			swarmShots++
		}
		s.projectiles = append(s.projectiles, Projectile{
			Pos:   origin,
			Vel:   req.Velocity,
			Owner: req.Owner,
			Alive: true,
		})
	}
	s.shootRequests = s.shootRequests[:0]
	return swarmShots
}

// resolveCollisions detects all candidate hits first, then applies them.
// A candidate whose projectile or target was consumed earlier in the same
// pass is stale and skipped.
func (s *Session) resolveCollisions(res *TickResult) {
	for _, hit := range detectHits(s.projectiles, s.swarm, s.paddle) {
		p := &s.projectiles[hit.Projectile]
		if !p.Alive {
			s.logger.Debug("stale hit skipped", "projectile", hit.Projectile, "reason", "projectile consumed")
			res.Stale++
			continue
		}

		switch hit.Kind {
		case HitTarget:
			if !s.swarm.Kill(hit.Target) {
				s.logger.Debug("stale hit skipped", "projectile", hit.Projectile, "target", hit.Target, "reason", "target consumed")
				res.Stale++
				continue
			}
			p.Alive = false
			s.score.Kill()
			res.Kills++
		case HitPaddle:
			p.Alive = false
			s.struck = true
		}
	}
}

// evaluate decides the outcome of the frame. Clearing the swarm beats
// being struck on the same frame; the lose line is only checked while
// targets remain.
func (s *Session) evaluate() {
	struck := s.struck
	s.struck = false

	switch {
	case s.swarm.Empty():
		s.fire(TriggerSwarmCleared)
	case struck:
		s.fire(TriggerPaddleHit)
	case s.swarm != nil && s.swarm.Area.Min.Y <= s.cfg.Field.LoseLine:
		s.fire(TriggerInvaded)
	}
}
