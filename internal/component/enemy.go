package component

// EnemyKind — архетип врага; используется как ключ статических таблиц.
type EnemyKind int

const (
	KindPawn EnemyKind = iota
	KindStinger
	KindSplitter
	KindRogue
	KindBishop
	KindPropagator
	KindNeonate
)

var enemyKindNames = [...]string{"Pawn", "Stinger", "Splitter", "Rogue", "Bishop", "Propagator", "Neonate"}

func (k EnemyKind) String() string {
	if int(k) < 0 || int(k) >= len(enemyKindNames) {
		return "Unknown"
	}
	return enemyKindNames[k]
}

// EnemyType — вариант врага. Только Splitter и Neonate несут состояние;
// системы заменяют вариант целиком, а не правят поля через указатель.
type EnemyType interface {
	Kind() EnemyKind
	enemyType()
}

type (
	Pawn       struct{}
	Stinger    struct{}
	Rogue      struct{}
	Bishop     struct{}
	Propagator struct{}
)

// Splitter делится при смерти, пока SplitCount < 2.
type Splitter struct {
	SplitCount   int     // поколение: 0, 1, 2+
	LastRedirect float64 // игровое время последнего перенацеливания
	Direction    Vec2
}

// Neonate — потомок Propagator; первую секунду летит по унаследованному курсу.
type Neonate struct {
	Direction Vec2
	SpawnTime float64
}

func (Pawn) Kind() EnemyKind       { return KindPawn }
func (Stinger) Kind() EnemyKind    { return KindStinger }
func (Splitter) Kind() EnemyKind   { return KindSplitter }
func (Rogue) Kind() EnemyKind      { return KindRogue }
func (Bishop) Kind() EnemyKind     { return KindBishop }
func (Propagator) Kind() EnemyKind { return KindPropagator }
func (Neonate) Kind() EnemyKind    { return KindNeonate }

func (Pawn) enemyType()       {}
func (Stinger) enemyType()    {}
func (Splitter) enemyType()   {}
func (Rogue) enemyType()      {}
func (Bishop) enemyType()     {}
func (Propagator) enemyType() {}
func (Neonate) enemyType()    {}

// Enemy представляет вражескую сущность.
type Enemy struct {
	Health  int64
	Variant EnemyType
	Speed   float64 // единиц в секунду
	Size    Vec2    // половинные размеры AABB
}

// Deacon — спутник Bishop, лечащий ближайшего союзника.
type Deacon struct {
	Speed     float64
	Size      Vec2
	Direction Vec2
	SpawnTime float64
}
