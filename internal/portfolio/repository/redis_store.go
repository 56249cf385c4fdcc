package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

// Key layout, relative to the configured prefix:
//
//	{prefix}:{kind}:seq       INCR counter for ids
//	{prefix}:{kind}:{id}      JSON record
//	{prefix}:{kind}:index     sorted set of ids (score = id)
const (
	kindProject    = "project"
	kindExperience = "experience"
)

// redisTable is the record-agnostic half of the Redis stores.
type redisTable struct {
	client *redis.Client
	prefix string
	kind   string
}

func (t redisTable) seqKey() string   { return t.prefix + ":" + t.kind + ":seq" }
func (t redisTable) indexKey() string { return t.prefix + ":" + t.kind + ":index" }
func (t redisTable) recordKey(id int64) string {
	return t.prefix + ":" + t.kind + ":" + strconv.FormatInt(id, 10)
}

func (t redisTable) nextID(ctx context.Context) (int64, error) {
	id, err := t.client.Incr(ctx, t.seqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", t.kind, err)
	}
	return id, nil
}

func (t redisTable) insert(ctx context.Context, id int64, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", t.kind, err)
	}
	_, err = t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, t.recordKey(id), data, 0)
		pipe.ZAdd(ctx, t.indexKey(), redis.Z{Score: float64(id), Member: strconv.FormatInt(id, 10)})
		return nil
	})
	if err != nil {
		return fmt.Errorf("create %s %d: %w", t.kind, id, err)
	}
	return nil
}

// replace overwrites an existing record only.
func (t redisTable) replace(ctx context.Context, id int64, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", t.kind, err)
	}
	ok, err := t.client.SetXX(ctx, t.recordKey(id), data, 0).Result()
	if err != nil {
		return fmt.Errorf("update %s %d: %w", t.kind, id, err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (t redisTable) get(ctx context.Context, id int64, dst any) error {
	data, err := t.client.Get(ctx, t.recordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s %d: %w", t.kind, id, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal %s %d: %w", t.kind, id, err)
	}
	return nil
}

func (t redisTable) remove(ctx context.Context, id int64) error {
	var del *redis.IntCmd
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, t.recordKey(id))
		pipe.ZRem(ctx, t.indexKey(), strconv.FormatInt(id, 10))
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", t.kind, id, err)
	}
	if del.Val() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// all returns the raw JSON of every indexed record. Index entries whose record
// vanished between the two reads are skipped.
func (t redisTable) all(ctx context.Context) ([][]byte, error) {
	ids, err := t.client.ZRange(ctx, t.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s index: %w", t.kind, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = t.prefix + ":" + t.kind + ":" + id
	}
	vals, err := t.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.kind, err)
	}

	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		out = append(out, []byte(s))
	}
	return out, nil
}

// RedisProjectStore keeps projects in Redis.
type RedisProjectStore struct {
	t   redisTable
	now func() time.Time
}

func NewRedisProjectStore(client *redis.Client, prefix string) *RedisProjectStore {
	return &RedisProjectStore{
		t:   redisTable{client: client, prefix: prefix, kind: kindProject},
		now: time.Now,
	}
}

func (s *RedisProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	raw, err := s.t.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(raw))
	for _, data := range raw {
		var p domain.Project
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal project: %w", err)
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Project) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmpDesc(a.ID, b.ID)
	})
	return out, nil
}

func (s *RedisProjectStore) Get(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	if err := s.t.get(ctx, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *RedisProjectStore) Create(ctx context.Context, p *domain.Project) error {
	id, err := s.t.nextID(ctx)
	if err != nil {
		return err
	}
	p.ID = id
	p.CreatedAt = s.now().UTC()
	return s.t.insert(ctx, id, p)
}

func (s *RedisProjectStore) Update(ctx context.Context, p *domain.Project) error {
	current, err := s.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = current.CreatedAt
	return s.t.replace(ctx, p.ID, p)
}

func (s *RedisProjectStore) Delete(ctx context.Context, id int64) error {
	return s.t.remove(ctx, id)
}

// RedisExperienceStore keeps experience entries in Redis.
type RedisExperienceStore struct {
	t redisTable
}

func NewRedisExperienceStore(client *redis.Client, prefix string) *RedisExperienceStore {
	return &RedisExperienceStore{t: redisTable{client: client, prefix: prefix, kind: kindExperience}}
}

func (s *RedisExperienceStore) List(ctx context.Context) ([]domain.Experience, error) {
	raw, err := s.t.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Experience, 0, len(raw))
	for _, data := range raw {
		var e domain.Experience
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("unmarshal experience: %w", err)
		}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b domain.Experience) int {
		if c := b.StartDate.Time().Compare(a.StartDate.Time()); c != 0 {
			return c
		}
		return cmpDesc(a.ID, b.ID)
	})
	return out, nil
}

func (s *RedisExperienceStore) Get(ctx context.Context, id int64) (*domain.Experience, error) {
	var e domain.Experience
	if err := s.t.get(ctx, id, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *RedisExperienceStore) Create(ctx context.Context, e *domain.Experience) error {
	id, err := s.t.nextID(ctx)
	if err != nil {
		return err
	}
	e.ID = id
	return s.t.insert(ctx, id, e)
}

func (s *RedisExperienceStore) Update(ctx context.Context, e *domain.Experience) error {
	return s.t.replace(ctx, e.ID, e)
}

func (s *RedisExperienceStore) Delete(ctx context.Context, id int64) error {
	return s.t.remove(ctx, id)
}

// NewRedisStores wires both record stores onto one client.
func NewRedisStores(client *redis.Client, prefix string) Stores {
	return Stores{
		Projects:    NewRedisProjectStore(client, prefix),
		Experiences: NewRedisExperienceStore(client, prefix),
	}
}

func cmpDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
