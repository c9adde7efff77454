package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"interview-admin-backend/internal/storage"
)

// docStore keeps every document as JSON under "<collection>:<id>" and
// tracks membership of each collection in a "<collection>:all" set.
type docStore struct {
	client *redis.Client
}

func New(client *redis.Client) storage.Store {
	return &docStore{client: client}
}

func makeDocKey(collection, id string) string {
	return fmt.Sprintf("%s:%s", collection, id)
}

func makeIndexKey(collection string) string {
	return fmt.Sprintf("%s:all", collection)
}

func (s *docStore) Put(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, makeDocKey(collection, id), data, 0)
	pipe.SAdd(ctx, makeIndexKey(collection), id)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *docStore) Get(ctx context.Context, collection, id string) (*storage.Doc, error) {
	data, err := s.client.Get(ctx, makeDocKey(collection, id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &storage.Doc{ID: id, Data: data}, nil
}

func (s *docStore) List(ctx context.Context, collection string, opts storage.ListOptions) ([]storage.Doc, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	if opts.OrderBy != "" {
		sortDocs(docs, opts.OrderBy, opts.Desc)
	}
	return docs, nil
}

func (s *docStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	key := makeDocKey(collection, id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return storage.ErrNotFound
		}
		return err
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	updated, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	return s.client.Set(ctx, key, updated, 0).Err()
}

func (s *docStore) Count(ctx context.Context, collection string, where storage.Where) (int64, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return 0, err
	}

	var n int64
	for _, doc := range docs {
		if matchesWhere(doc.Data, where) {
			n++
		}
	}
	return n, nil
}

func (s *docStore) Delete(ctx context.Context, collection, id string) error {
	pipe := s.client.Pipeline()
	del := pipe.Del(ctx, makeDocKey(collection, id))
	pipe.SRem(ctx, makeIndexKey(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if del.Val() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *docStore) DeleteWhere(ctx context.Context, collection string, where storage.Where) (int64, error) {
	docs, err := s.loadAll(ctx, collection)
	if err != nil {
		return 0, err
	}

	var matched []string
	for _, doc := range docs {
		if matchesWhere(doc.Data, where) {
			matched = append(matched, doc.ID)
		}
	}
	if len(matched) == 0 {
		return 0, nil
	}

	pipe := s.client.Pipeline()
	for _, id := range matched {
		pipe.Del(ctx, makeDocKey(collection, id))
		pipe.SRem(ctx, makeIndexKey(collection), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (s *docStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// loadAll fetches every document of a collection through the index set.
func (s *docStore) loadAll(ctx context.Context, collection string) ([]storage.Doc, error) {
	ids, err := s.client.SMembers(ctx, makeIndexKey(collection)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, makeDocKey(collection, id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	docs := make([]storage.Doc, 0, len(ids))
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			// stale index entry without a document
			continue
		}
		docs = append(docs, storage.Doc{ID: ids[i], Data: data})
	}
	return docs, nil
}

func matchesWhere(data []byte, where storage.Where) bool {
	v := fieldValue(data, where.Field)
	if v == nil {
		return false
	}
	return valueString(v) == where.Value
}

func fieldValue(data []byte, field string) interface{} {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc[field]
}

func valueString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// sortDocs orders documents by a top-level field. RFC 3339 strings
// compare as instants, JSON numbers numerically, everything else as
// strings. Documents missing the field sort first.
func sortDocs(docs []storage.Doc, field string, desc bool) {
	type keyed struct {
		doc storage.Doc
		val interface{}
	}
	keyedDocs := make([]keyed, len(docs))
	for i, doc := range docs {
		keyedDocs[i] = keyed{doc: doc, val: fieldValue(doc.Data, field)}
	}
	sort.SliceStable(keyedDocs, func(i, j int) bool {
		c := compareValues(keyedDocs[i].val, keyedDocs[j].val)
		if desc {
			return c > 0
		}
		return c < 0
	})
	for i, kd := range keyedDocs {
		docs[i] = kd.doc
	}
}

func compareValues(a, b interface{}) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if at, aok := asTime(a); aok {
		if bt, bok := asTime(b); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if af, aok := asNumber(a); aok {
		if bf, bok := asNumber(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	as, bs := valueString(a), valueString(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asTime(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func asNumber(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
