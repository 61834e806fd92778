package filestorages

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects  map[string]string
	putInput *s3.PutObjectInput
	putErr   error
	getErr   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := aws.ToString(params.Key)
	if _, exists := f.objects[key]; exists && aws.ToString(params.IfNoneMatch) == "*" {
		return nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"}
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[key] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3Storage_PutGet(t *testing.T) {
	t.Parallel()

	client := &fakeS3{objects: map[string]string{}}
	storage := newS3Storage(client, "archive")
	ctx := context.Background()

	result, err := storage.Put(ctx, "raw-batches/w.json", strings.NewReader(`[]`), PutOptions{ContentType: "application/json"})
	require.NoError(t, err)
	assert.Equal(t, "raw-batches/w.json", result.FileKey)
	assert.Equal(t, "archive", aws.ToString(client.putInput.Bucket))
	assert.Equal(t, "application/json", aws.ToString(client.putInput.ContentType))
	assert.Equal(t, "*", aws.ToString(client.putInput.IfNoneMatch))

	readCloser, err := storage.Get(ctx, "raw-batches/w.json")
	require.NoError(t, err)
	defer readCloser.Close()
	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(content))
}

func TestS3Storage_PutNoOverwrite_Exists(t *testing.T) {
	t.Parallel()

	client := &fakeS3{objects: map[string]string{"raw-batches/w.json": "old"}}
	storage := newS3Storage(client, "archive")

	_, err := storage.Put(context.Background(), "raw-batches/w.json", strings.NewReader("new"), PutOptions{})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)
	assert.Equal(t, "old", client.objects["raw-batches/w.json"])
}

func TestS3Storage_PutOverwrite_OmitsCondition(t *testing.T) {
	t.Parallel()

	client := &fakeS3{objects: map[string]string{"batch-reports/r.json": "old"}}
	storage := newS3Storage(client, "archive")

	_, err := storage.Put(context.Background(), "batch-reports/r.json", strings.NewReader("new"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Nil(t, client.putInput.IfNoneMatch)
	assert.Equal(t, "new", client.objects["batch-reports/r.json"])
}

func TestS3Storage_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := newS3Storage(&fakeS3{objects: map[string]string{}}, "archive").Get(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrFileNotFound)

	boom := errors.New("connection reset")
	_, err = newS3Storage(&fakeS3{objects: map[string]string{}, getErr: boom}, "archive").Get(ctx, "k.json")
	assert.ErrorIs(t, err, boom)

	_, err = newS3Storage(&fakeS3{objects: map[string]string{}, putErr: boom}, "archive").Put(ctx, "k.json", strings.NewReader(""), PutOptions{})
	assert.ErrorIs(t, err, boom)

	_, err = newS3Storage(&fakeS3{objects: map[string]string{}}, "archive").Put(ctx, "../k.json", strings.NewReader(""), PutOptions{})
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewS3Storage(S3Options{})
	assert.Error(t, err)
}
