package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"userbase/internal/models"
)

// MongoStore is the MongoDB-backed UserStore. User ids are allocated from
// the "counters" collection so they stay numeric.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) users() *mongo.Collection {
	return s.db.Collection("users")
}

func (s *MongoStore) nextID(ctx context.Context) (int64, error) {
	res := s.db.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": "userId"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (s *MongoStore) Insert(ctx context.Context, user *models.User) error {
	id, err := s.nextID(ctx)
	if err != nil {
		return err
	}
	user.ID = id

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err = s.users().InsertOne(ctx, user)
	return err
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoStore) FindByIDAndToken(ctx context.Context, id int64, refreshToken string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id, "refreshToken": refreshToken})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := s.users().FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.PhoneNo != nil {
		set["phoneNo"] = *update.PhoneNo
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.DOB != nil {
		set["dob"] = *update.DOB
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}

	return s.updateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

func (s *MongoStore) SetSession(ctx context.Context, id int64, refreshToken string) (bool, error) {
	return s.updateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"refreshToken": refreshToken,
			"isLogin":      true,
			"updatedAt":    time.Now(),
		},
	})
}

func (s *MongoStore) RotateSession(ctx context.Context, id int64, current, next string) (bool, error) {
	return s.updateOne(ctx, bson.M{"_id": id, "refreshToken": current}, bson.M{
		"$set": bson.M{
			"refreshToken": next,
			"isLogin":      true,
			"updatedAt":    time.Now(),
		},
	})
}

func (s *MongoStore) ClearSession(ctx context.Context, id int64, current string) (bool, error) {
	return s.updateOne(ctx, bson.M{"_id": id, "refreshToken": current}, bson.M{
		"$set": bson.M{
			"refreshToken": "",
			"isLogin":      false,
			"updatedAt":    time.Now(),
		},
	})
}

func (s *MongoStore) updateOne(ctx context.Context, filter, update bson.M) (bool, error) {
	res, err := s.users().UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.users().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
