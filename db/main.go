package db

import (
	"fmt"
	"sync"

	"github.com/jchavannes/jgo/jerr"
	"github.com/jchavannes/jgo/jutil"
	"github.com/memocash/tweetparse/config"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	PrefixTweet   = "tweet"
	PrefixHashtag = "hashtag"
	PrefixLimit   = "limit"
)

type ObjectI interface {
	GetPrefix() string
	GetUid() []byte
	SetUid([]byte)
	Serialize() []byte
	Deserialize([]byte)
}

const Spacer = '-'

var _db = struct {
	Mutex sync.Mutex
	Path  string
	Db    *leveldb.DB
}{}

// SetPath points the archive at a different directory, closing any open handle.
func SetPath(path string) error {
	_db.Mutex.Lock()
	defer _db.Mutex.Unlock()
	if err := closeDb(); err != nil {
		return jerr.Get("error closing db for set path", err)
	}
	_db.Path = path
	return nil
}

func GetDb() (*leveldb.DB, error) {
	_db.Mutex.Lock()
	defer _db.Mutex.Unlock()
	if _db.Db != nil {
		return _db.Db, nil
	}
	path := _db.Path
	if path == "" {
		path = config.GetConfig().DbPath
	}
	if path == "" {
		path = config.DefaultDbPath
	}
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, jerr.Get("error opening db", err)
	}
	_db.Db = db
	return db, nil
}

func Close() error {
	_db.Mutex.Lock()
	defer _db.Mutex.Unlock()
	return closeDb()
}

func closeDb() error {
	if _db.Db == nil {
		return nil
	}
	err := _db.Db.Close()
	_db.Db = nil
	if err != nil {
		return jerr.Get("error closing db", err)
	}
	return nil
}

func GetObjectCombinedUid(o ObjectI) []byte {
	return jutil.CombineBytes([]byte(o.GetPrefix()), []byte{Spacer}, o.GetUid())
}

func Save(objects []ObjectI) error {
	db, err := GetDb()
	if err != nil {
		return jerr.Get("error getting database handler for save", err)
	}
	batch := new(leveldb.Batch)
	for _, object := range objects {
		batch.Put(GetObjectCombinedUid(object), object.Serialize())
	}
	if err := db.Write(batch, nil); err != nil {
		return jerr.Get("error saving leveldb objects", err)
	}
	return nil
}

func Delete(objects []ObjectI) error {
	db, err := GetDb()
	if err != nil {
		return jerr.Get("error getting database handler for delete", err)
	}
	batch := new(leveldb.Batch)
	for _, object := range objects {
		batch.Delete(GetObjectCombinedUid(object))
	}
	if err := db.Write(batch, nil); err != nil {
		return jerr.Get("error deleting leveldb objects", err)
	}
	return nil
}

// GetItem loads the value stored under the object's uid. Missing keys return leveldb.ErrNotFound
// wrapped so errors.Is matches.
func GetItem(obj ObjectI) error {
	db, err := GetDb()
	if err != nil {
		return fmt.Errorf("error getting database handler for get item; %w", err)
	}
	val, err := db.Get(GetObjectCombinedUid(obj), nil)
	if err != nil {
		return fmt.Errorf("error getting db item single; %w", err)
	}
	obj.Deserialize(val)
	return nil
}

func GetLastItem(obj ObjectI, prefix []byte) error {
	db, err := GetDb()
	if err != nil {
		return fmt.Errorf("error getting database handler for get last item; %w", err)
	}
	iter := db.NewIterator(util.BytesPrefix(objectPrefix(obj.GetPrefix(), prefix)), nil)
	defer iter.Release()
	if !iter.Last() {
		return leveldb.ErrNotFound
	}
	Set(obj, iter)
	return nil
}

// Set fills obj from the iterator's current key and value.
func Set(obj ObjectI, iter iterator.Iterator) {
	key := iter.Key()
	prefixLen := len(obj.GetPrefix()) + 1
	if len(key) < prefixLen {
		return
	}
	obj.SetUid(jutil.CombineBytes(key[prefixLen:]))
	obj.Deserialize(jutil.CombineBytes(iter.Value()))
}

// GetAll iterates every object under prefix in key order. newObj allocates the destination of
// each entry; max of zero means no limit.
func GetAll[T ObjectI](newObj func() T, prefix []byte, max int) ([]T, error) {
	db, err := GetDb()
	if err != nil {
		return nil, fmt.Errorf("error getting database handler for get all; %w", err)
	}
	var objects []T
	iter := db.NewIterator(util.BytesPrefix(objectPrefix(newObj().GetPrefix(), prefix)), nil)
	defer iter.Release()
	for iter.Next() {
		obj := newObj()
		Set(obj, iter)
		objects = append(objects, obj)
		if max > 0 && len(objects) >= max {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("error iterating over db objects; %w", err)
	}
	return objects, nil
}

func objectPrefix(prefix string, uidPrefix []byte) []byte {
	return jutil.CombineBytes([]byte(prefix), []byte{Spacer}, uidPrefix)
}
