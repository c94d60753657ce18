//go:build gomock || generate

package pathstore

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package pathstore -self_package github.com/mengelbart/pathstore -destination mock_path_test.go github.com/mengelbart/pathstore Path"
